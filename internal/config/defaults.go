package config

const (
	projectConfigName = "trowel.toml"
	userConfigPath    = "~/.config/trowel/config.toml"

	defaultReposDir   = "repos"
	defaultOutputDir  = "forensics-output"
	defaultReportsDir = "reports"
	defaultSkillsDir  = ".claude/skills"

	defaultBatchLimit = 1

	defaultLogFormat = "console"
	defaultLogLevel  = "info"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			ReposDir:   defaultReposDir,
			OutputDir:  defaultOutputDir,
			ReportsDir: defaultReportsDir,
			SkillsDir:  defaultSkillsDir,
		},
		Discovery: Discovery{
			BatchLimit: defaultBatchLimit,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
