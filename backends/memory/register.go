package memory

import "github.com/ratewall/ratewall/backends"

func init() {
	backends.Register("memory", func(config any) (backends.Backend, error) {
		return New(), nil
	})
}
