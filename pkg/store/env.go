package store

import (
	"strings"

	"github.com/spf13/viper"
)

var _ Store = (*Env)(nil)

// Env reads values from PREFIXLOG_STORE_<KEY> environment variables. Set and
// Delete only affect the process, nothing is persisted.
type Env struct {
	v *viper.Viper
}

func NewEnv() *Env {
	v := viper.New()
	v.SetEnvPrefix("prefixlog_store")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()
	return &Env{v: v}
}

func (e *Env) Get(key string) (string, error) {
	if !e.v.IsSet(key) {
		return "", ErrNotFound
	}
	s := e.v.GetString(key)
	if s == "" {
		return "", ErrNotFound
	}
	return s, nil
}

func (e *Env) Set(key, value string) error {
	e.v.Set(key, value)
	return nil
}

func (e *Env) Delete(key string) error {
	e.v.Set(key, "")
	return nil
}

func (e *Env) Close() error { return nil }
