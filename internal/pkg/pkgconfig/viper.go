package pkgconfig

import (
	"math"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"
)

var _ Config = (*Viper)(nil)

// Viper is a Config implementation backed by github.com/spf13/viper.
type Viper struct {
	v *viper.Viper
}

// NewViper reads the config file at pathFile, whose type comes from its
// extension. Every key can be overridden by an environment variable named
// after the key in upper case with dots replaced by underscores
// (storage.record.dsn -> STORAGE_RECORD_DSN).
func NewViper(pathFile string) (*Viper, error) {
	v := viper.New()
	v.SetConfigFile(filepath.Clean(pathFile))
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		return nil, err
	}

	return &Viper{v: v}, nil
}

func (vc *Viper) GetInt(key string) int64 {
	return vc.v.GetInt64(key)
}

func (vc *Viper) GetBool(key string) bool {
	return vc.v.GetBool(key)
}

func (vc *Viper) GetString(key string) string {
	return vc.v.GetString(key)
}

func (vc *Viper) GetArray(key string) []string {
	parts := strings.Split(vc.v.GetString(key), ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// GetSize accepts a plain byte count or a number suffixed with kb, mb or gb
// (powers of 1024, case-insensitive).
func (vc *Viper) GetSize(key string) int64 {
	n := vc.v.GetSizeInBytes(key)
	if uint64(n) > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(n)
}

// GetDuration accepts Go duration strings such as "15s" or "1m30s".
func (vc *Viper) GetDuration(key string) time.Duration {
	return vc.v.GetDuration(key)
}

// Close is a no-op. Viper holds no resources once the file has been read.
func (vc *Viper) Close() error {
	return nil
}
