// conf/defaults.go default values for settings
package conf

import (
	"github.com/spf13/viper"
)

// Sets default values for the configuration.
func setDefaultConfig() {
	viper.SetDefault("debug", false)

	viper.SetDefault("main.name", "aitacurator")
	viper.SetDefault("main.log.enabled", true)
	viper.SetDefault("main.log.path", "logs/aitacurator.log")
	viper.SetDefault("main.log.maxsize", 100)
	viper.SetDefault("main.log.maxbackups", 3)
	viper.SetDefault("main.log.maxage", 28)

	viper.SetDefault("corpus.datadir", "data")
	viper.SetDefault("corpus.submissionsfile", "submission.csv")
	viper.SetDefault("corpus.commentsfile", "comment.csv")

	viper.SetDefault("sampling.profile", ProfileStandard)
	viper.SetDefault("sampling.maxsubmissionchars", 2000)
	viper.SetDefault("sampling.maxcommentchars", 500)
	viper.SetDefault("sampling.samplespercategory", 50)
	viper.SetDefault("sampling.oversamplefactor", 5)
	viper.SetDefault("sampling.commentspersubmission", 3)
	viper.SetDefault("sampling.seed", 42)

	viper.SetDefault("output.samplesdir", "samples")
	viper.SetDefault("output.favoritesdir", "favorites")
	viper.SetDefault("output.prefix", "sampled")

	viper.SetDefault("database.type", "sqlite")
	viper.SetDefault("database.path", "data/AmItheAsshole.sqlite")
	viper.SetDefault("database.host", "localhost")
	viper.SetDefault("database.port", "3306")
	viper.SetDefault("database.username", "")
	viper.SetDefault("database.password", "")
	viper.SetDefault("database.database", "reddit")
	viper.SetDefault("database.batchsize", 5000)
}
