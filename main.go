package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"supportdesk/agents"
	"supportdesk/config"
	"supportdesk/controllers"
	"supportdesk/db"
	"supportdesk/logger"
	"supportdesk/router"
	"supportdesk/tools"
)

func main() {
	conf := config.Get()
	log := logger.New(conf.LogLevel, conf.LogFormat)
	defer log.Sync()

	database, err := db.Connect(conf, log)
	if err != nil {
		log.Fatal("could not open database", zap.Error(err))
	}
	defer database.Close()

	var model agents.IntentModel
	if conf.OpenAIAPIKey != "" {
		model = tools.NewOpenAIClassifier(conf.OpenAIAPIKey, conf.OpenAIModel)
		log.Info("model-backed intent classification enabled",
			zap.String("model", conf.OpenAIModel))
	} else {
		log.Info("rule-based intent classification only")
	}

	pipeline := agents.NewPipeline(model, conf.EmailEnabled, conf.SMSEnabled, log)
	controllers.SetLogger(log, conf.VerboseErrors)

	r := gin.New()
	r.Use(db.SetDBtoContext(database))
	r.Use(agents.SetPipelineToContext(pipeline))
	router.Initialize(r, log)

	log.Info("listening", zap.String("port", conf.ApiPort))
	if err := r.Run(":" + conf.ApiPort); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
