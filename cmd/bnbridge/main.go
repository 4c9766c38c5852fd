package main

import (
	log "github.com/sirupsen/logrus"

	"github.com/smallyu/go-tpm-bnbridge/internal/cmd/root"
)

func main() {
	err := root.GetRootCmd().Execute()
	if err != nil {
		log.Fatalf("bnbridge: %s", err.Error())
	}
}
