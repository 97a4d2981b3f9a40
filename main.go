package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/camcaswell/sir-robin/app"
)

func main() {
	configPath := os.Getenv("SIRROBIN_CONFIG")
	if configPath == "" {
		configPath = "config.yml"
	}
	config, err := app.LoadConfig(configPath)
	if err != nil {
		log.Fatal(err)
		return
	}
	session, err := app.Start(os.Getenv("DISCORD_SECRET"), config)
	defer func() {
		// If a session is established, close it properly before exiting
		if session != nil {
			session.Close()
		}
	}()
	if err != nil {
		log.Fatal(err)
		return
	}

	log.Println("Successful startup! Kill the process to stop the bot")

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sig
}
