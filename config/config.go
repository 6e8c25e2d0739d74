package config

import (
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

const (
	defaultPath = "."

	// EnvPrefix marks the environment variables that override config.yaml values.
	EnvPrefix = "CREDGATE_"

	AlgorithmBcrypt   = "bcrypt"
	AlgorithmArgon2ID = "argon2id"

	DefaultBcryptCost        = 12
	DefaultMinPasswordLength = 12
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	Auth *AuthConfig `json:"auth" yaml:"auth" validate:"required"`

	PasswordStrength *PasswordStrengthConfig `json:"passwordStrength" yaml:"passwordStrength" validate:"required"`

	// Policy locates the forbidden-term and breached-password lists.
	Policy *PolicyConfig `json:"policy" yaml:"policy" validate:"required"`
}

// AuthConfig defines credential hashing configuration
type AuthConfig struct {
	Algorithm  string        `json:"algorithm" yaml:"algorithm" validate:"oneof=bcrypt argon2id"`
	BcryptCost int           `json:"bcryptCost" yaml:"bcryptCost" validate:"min=4,max=31"`
	Argon2     *Argon2Config `json:"argon2" yaml:"argon2" validate:"required"`
}

// Argon2Config holds the argon2id work parameters. Memory is in KiB.
type Argon2Config struct {
	Memory      uint32 `json:"memory" yaml:"memory" validate:"min=8192"`
	Time        uint32 `json:"time" yaml:"time" validate:"min=1"`
	Parallelism uint8  `json:"parallelism" yaml:"parallelism" validate:"min=1"`
	SaltLength  uint32 `json:"saltLength" yaml:"saltLength" validate:"min=16"`
	KeyLength   uint32 `json:"keyLength" yaml:"keyLength" validate:"min=16"`
}

// PasswordStrengthConfig defines password strength requirements
type PasswordStrengthConfig struct {
	MinLength int `json:"minLength" yaml:"minLength" validate:"min=1"`
}

// PolicyConfig points at the plain-text policy lists inside a gocloud.dev bucket.
type PolicyConfig struct {
	// Bucket URL, e.g. "file://./data" or "mem://"
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl" validate:"required"`

	// Object key of the forbidden username terms list. Empty disables the list.
	ProfaneTermsKey string `json:"profaneTermsKey" yaml:"profaneTermsKey"`

	// Object key of the breached/common passwords list. Empty disables the list.
	BreachedPasswordsKey string `json:"breachedPasswordsKey" yaml:"breachedPasswordsKey"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level" validate:"omitempty,oneof=debug info warn error"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	configFile, err := findConfigFile(currEnv, configPath)
	if err != nil {
		return nil, err
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(k, v string) (string, any) {
			// CREDGATE_AUTH_BCRYPTCOST -> auth.bcryptCost
			key := canonicalizeEnvKey(strings.TrimPrefix(k, EnvPrefix), existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	cfg.ApplyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ApplyDefaults fills every unset value with its default.
func (c *Config) ApplyDefaults() {
	if c.Env.ServiceName == "" {
		c.Env.ServiceName = "credgate"
	}
	if c.Env.Log.Level == "" {
		c.Env.Log.Level = "info"
	}

	if c.Auth == nil {
		c.Auth = &AuthConfig{}
	}
	if c.Auth.Algorithm == "" {
		c.Auth.Algorithm = AlgorithmBcrypt
	}
	if c.Auth.BcryptCost == 0 {
		c.Auth.BcryptCost = DefaultBcryptCost
	}
	if c.Auth.Argon2 == nil {
		c.Auth.Argon2 = &Argon2Config{}
	}
	a := c.Auth.Argon2
	if a.Memory == 0 {
		a.Memory = 64 * 1024
	}
	if a.Time == 0 {
		a.Time = 1
	}
	if a.Parallelism == 0 {
		a.Parallelism = 4
	}
	if a.SaltLength == 0 {
		a.SaltLength = 16
	}
	if a.KeyLength == 0 {
		a.KeyLength = 32
	}

	if c.PasswordStrength == nil {
		c.PasswordStrength = &PasswordStrengthConfig{}
	}
	if c.PasswordStrength.MinLength == 0 {
		c.PasswordStrength.MinLength = DefaultMinPasswordLength
	}

	if c.Policy == nil {
		c.Policy = &PolicyConfig{}
	}
	if c.Policy.BucketURL == "" {
		c.Policy.BucketURL = "file://./data"
	}
}

// Validate checks the struct tags of the whole configuration tree.
func (c *Config) Validate() error {
	if err := validator.New(validator.WithRequiredStructEnabled()).Struct(c); err != nil {
		return errors.Wrap(err, "invalid config")
	}

	return nil
}

func findConfigFile(currEnv string, configPath []string) (string, error) {
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return "", errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			searchPaths = append(searchPaths, filepath.Join(pwd, path))
		}
	}

	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", errors.Errorf("config file %s.yaml not found in any search path", currEnv)
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
