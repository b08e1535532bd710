package redis

import "github.com/ratewall/ratewall/backends"

func init() {
	backends.Register("redis", func(config any) (backends.Backend, error) {
		cfg, ok := config.(Config)
		if !ok {
			return nil, ErrInvalidConfig
		}
		return New(cfg)
	})
}
