package cmd

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"gooze.dev/pkg/mutview/internal/controller"
	"gooze.dev/pkg/mutview/internal/domain/navigator"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "mutview"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	reportFlagName       = "report"
	sourceRootFlagName   = "source-root"
	loopFlagName         = "loop-locations"
	mutantPolicyFlagName = "mutant-policy"
	testCasesFlagName    = "test-cases"
	addressFlagName      = "address"
	sortFlagName         = "sort"
	descFlagName         = "desc"
	filterFlagName       = "filter"
	logFileFlagName      = "log-file"
	verboseFlagName      = "verbose"

	reportKey        = "report"
	sourceRootKey    = "source_root"
	loadWorkersKey   = "load.workers"
	loopLocationsKey = "navigation.loop_locations"
	mutantPolicyKey  = "navigation.mutant_policy"
	testCasesKey     = "navigation.test_cases"
	listSortKey      = "list.sort"
	listDescKey      = "list.desc"

	keyLocationUpKey   = "keys.location_up"
	keyLocationDownKey = "keys.location_down"
	keyMutantPrevKey   = "keys.mutant_prev"
	keyMutantNextKey   = "keys.mutant_next"
	keyToggleMutantKey = "keys.toggle_mutant"

	defaultReportPath    = ".mutview-reports"
	defaultLoadWorkers   = 0
	defaultLoopLocations = true
	defaultMutantPolicy  = string(navigator.PolicyFallthrough)
	defaultTestCases     = 3
	defaultListSort      = "path"
	defaultListDesc      = false

	envPrefix = "MUTVIEW"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".mutview.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(reportKey, defaultReportPath)
	viper.SetDefault(sourceRootKey, "")
	viper.SetDefault(loadWorkersKey, defaultLoadWorkers)
	viper.SetDefault(loopLocationsKey, defaultLoopLocations)
	viper.SetDefault(mutantPolicyKey, defaultMutantPolicy)
	viper.SetDefault(testCasesKey, defaultTestCases)
	viper.SetDefault(listSortKey, defaultListSort)
	viper.SetDefault(listDescKey, defaultListDesc)

	keys := controller.DefaultKeyConfig()
	viper.SetDefault(keyLocationUpKey, keys.LocationUp)
	viper.SetDefault(keyLocationDownKey, keys.LocationDown)
	viper.SetDefault(keyMutantPrevKey, keys.MutantPrev)
	viper.SetDefault(keyMutantNextKey, keys.MutantNext)
	viper.SetDefault(keyToggleMutantKey, keys.ToggleMutant)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return
		}

		return
	}
}

// keyConfig reads the navigation key bindings from the configuration.
func keyConfig() controller.KeyConfig {
	return controller.KeyConfig{
		LocationUp:   viper.GetString(keyLocationUpKey),
		LocationDown: viper.GetString(keyLocationDownKey),
		MutantPrev:   viper.GetString(keyMutantPrevKey),
		MutantNext:   viper.GetString(keyMutantNextKey),
		ToggleMutant: viper.GetString(keyToggleMutantKey),
	}
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug, which
// includes every navigator transition.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	// The TUI owns the terminal, so logs only ever go to the rotating file.
	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
