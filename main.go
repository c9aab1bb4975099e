package main

import (
	"github.com/ameyasu/novelai-http/internal/logger"
	"github.com/ameyasu/novelai-http/internal/naiapi"
	"github.com/ameyasu/novelai-http/internal/server"
	"github.com/spf13/viper"
)

func main() {
	defer logger.Sync()

	viper.AddConfigPath(".")
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	if err := viper.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			panic(err)
		}
		logger.Warnf("no config file found, using defaults")
	}
	var clientConfig naiapi.ClientConfig
	if err := viper.UnmarshalKey("novelai", &clientConfig); err != nil {
		panic(err)
	}
	viper.SetDefault("server.host", "127.0.0.1")
	viper.SetDefault("server.port", "9000")
	host := viper.GetString("server.host")
	port := viper.GetString("server.port")
	apiKey := viper.GetString("server.apiKey")

	client := naiapi.NewClient(clientConfig)
	logger.Infof("service is starting, host: %s, port: %s", host, port)
	server.Start(host, port, apiKey, client)
}
