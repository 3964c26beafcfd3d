package engine

import (
	"bufio"
	"os"
	"strings"
)

// DefaultTransportUri is the local ccnd socket.
const DefaultTransportUri = "tcp://127.0.0.1:9695"

type ClientConfig struct {
	TransportUri string
}

// GetClientConfig returns the client configuration.
// Files are read in order of increasing priority; the
// CCNX_CLIENT_TRANSPORT environment variable overrides them all.
func GetClientConfig() ClientConfig {
	config := ClientConfig{
		TransportUri: DefaultTransportUri,
	}

	configDirs := []string{
		"/etc/ccnx",
		"/usr/local/etc/ccnx",
		os.Getenv("HOME") + "/.ccnx",
	}

	for _, dir := range configDirs {
		readClientConf(dir+"/client.conf", &config)
	}

	if env := os.Getenv("CCNX_CLIENT_TRANSPORT"); env != "" {
		config.TransportUri = env
	}

	return config
}

func readClientConf(filename string, config *ClientConfig) {
	file, err := os.Open(filename)
	if err != nil {
		return
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if strings.HasPrefix(line, ";") { // comment
			continue
		}
		if transport, ok := strings.CutPrefix(line, "transport="); ok {
			config.TransportUri = transport
		}
	}
}
