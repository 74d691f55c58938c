package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/zeromicro/go-zero/core/conf"
	"github.com/zeromicro/go-zero/rest"

	"votum-api/pkg/confkit"
	llmpkg "votum-api/pkg/llm"
)

// TemplateConf names the prompt template files rendered at startup.
type TemplateConf struct {
	Instructions string `json:",default=templates/instructions.tmpl"`
}

type Config struct {
	rest.RestConf
	// Env indicates the running environment: test | dev | prod
	Env       string       `json:",default=test"`
	Templates TemplateConf `json:",optional"`

	LLM confkit.Section[llmpkg.Config] `json:",optional"`

	mainPath string
	baseDir  string
}

func (c *Config) IsTestEnv() bool {
	return c.Env == "test" || c.Env == ""
}

func MustLoad(path string) *Config {
	cfg, err := Load(path)
	if err != nil {
		panic(err)
	}
	return cfg
}

func Load(path string) (*Config, error) {
	confkit.LoadDotenvOnce()

	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve config path %s: %w", path, err)
	}

	var cfg Config
	if err := conf.Load(absPath, &cfg, conf.UseEnv()); err != nil {
		return nil, fmt.Errorf("load config %s: %w", absPath, err)
	}

	cfg.mainPath = absPath
	cfg.baseDir = filepath.Dir(absPath)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.LLM.Hydrate(cfg.baseDir, llmpkg.LoadConfig); err != nil {
		return nil, fmt.Errorf("load llm config: %w", err)
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.Env)) {
	case "", "test", "dev", "prod":
		if strings.TrimSpace(c.Env) == "" {
			c.Env = "test"
		}
	default:
		return errors.New("config: env must be one of test|dev|prod")
	}
	if strings.TrimSpace(c.Templates.Instructions) == "" {
		return errors.New("config: templates.instructions is required")
	}
	return nil
}

// InstructionTemplatePath resolves the instruction template relative to the
// main config file.
func (c *Config) InstructionTemplatePath() string {
	return confkit.ResolvePath(c.baseDir, c.Templates.Instructions)
}

func (c *Config) MainPath() string {
	return c.mainPath
}

func (c *Config) BaseDir() string {
	return c.baseDir
}
