package repo

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/named-data/ndnx/std/engine/face"
	"github.com/named-data/ndnx/std/log"
	"github.com/named-data/ndnx/std/utils"
	"github.com/spf13/cobra"
)

var CmdRepo = &cobra.Command{
	Use:     "repo CONFIG-FILE",
	Short:   "CCNx Content Repository",
	GroupID: "run",
	Version: utils.NDNxVersion,
	Args:    cobra.ExactArgs(1),
	Run:     run,
}

func run(cmd *cobra.Command, args []string) {
	config, err := ReadConfig(args[0])
	if err != nil {
		log.Fatal(nil, "Configuration error", "err", err)
	}

	logger, closer, err := log.OpenFile(config.Core.LogFile)
	if err != nil {
		log.Fatal(nil, "Unable to open log file", "err", err)
	}
	defer closer.Close()
	level, _ := log.ParseLevel(config.Core.LogLevel)
	logger.SetLevel(level)
	log.SetDefault(logger)

	f, err := face.NewFace(config.Face.Network, config.Face.Addr)
	if err != nil {
		log.Fatal(nil, "Unable to create face", "err", err)
	}
	f.SetDecoderOptions(config.Decoder)

	down := make(chan struct{})
	f.OnDown(func() { close(down) })

	repo := NewRepo(config, f)
	if err = repo.Start(); err != nil {
		log.Fatal(nil, "Failed to start repo", "err", err)
	}
	defer repo.Stop()

	sigChannel := make(chan os.Signal, 1)
	signal.Notify(sigChannel, os.Interrupt, syscall.SIGTERM)
	select {
	case <-sigChannel:
	case <-down:
		log.Error(repo, "Face went down")
	}
}
