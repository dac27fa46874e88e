package configuration

import (
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/maps"
	"github.com/spf13/pflag"

	"github.com/mochidev/Bytes/ierrors"
)

// lowerPosflag is a koanf provider over a pflag set that lowercases every
// flag name before it enters the config map.
type lowerPosflag struct {
	delim   string
	flagset *pflag.FlagSet
	ko      *koanf.Koanf
}

// lowerPosflagProvider returns a command line flags provider that returns a
// nested map[string]interface{} where the nesting hierarchy of keys is
// defined by delim.
//
// The Koanf instance is consulted to decide whether a flag's default value
// applies: defaults are merged only for keys that no other provider (such as
// a config file) has set, while explicitly passed flags always win.
func lowerPosflagProvider(f *pflag.FlagSet, delim string, ko *koanf.Koanf) *lowerPosflag {
	return &lowerPosflag{
		flagset: f,
		delim:   delim,
		ko:      ko,
	}
}

// flagValue returns the typed value of a flag, falling back to its string
// form for types the config map does not special-case.
func (p *lowerPosflag) flagValue(f *pflag.Flag) interface{} {
	switch f.Value.Type() {
	case "int":
		i, _ := p.flagset.GetInt(f.Name)
		return int64(i)
	case "int64":
		v, _ := p.flagset.GetInt64(f.Name)
		return v
	case "float64":
		v, _ := p.flagset.GetFloat64(f.Name)
		return v
	case "bool":
		v, _ := p.flagset.GetBool(f.Name)
		return v
	case "stringSlice":
		v, _ := p.flagset.GetStringSlice(f.Name)
		return v
	default:
		return f.Value.String()
	}
}

// Read reads the flag variables and returns a nested conf map.
func (p *lowerPosflag) Read() (map[string]interface{}, error) {
	mp := make(map[string]interface{})
	p.flagset.VisitAll(func(f *pflag.Flag) {
		// defaults only apply when no other provider set the key yet
		if !f.Changed && (p.ko == nil || p.ko.Exists(strings.ToLower(f.Name))) {
			return
		}

		mp[strings.ToLower(f.Name)] = p.flagValue(f)
	})

	return maps.Unflatten(mp, p.delim), nil
}

// ReadBytes is not supported by the pflag provider.
func (p *lowerPosflag) ReadBytes() ([]byte, error) {
	return nil, ierrors.New("pflag provider does not support this method")
}

// Watch is not supported.
func (p *lowerPosflag) Watch(cb func(event interface{}, err error)) error {
	return ierrors.New("pflag provider does not support this method")
}
