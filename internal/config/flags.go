package config

import (
	"errors"
	"flag"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// ParseFlags parses all configuration flags.
//
// Flags:
//
//	-a drive API address in format [host]:[port]
//	-d local SQLite cache path
//	-c/-config json file path with configs
//	-request-timeout drive request timeout (e.g., "30s", "1m")
//	-debounce-interval quiet period before auto-sync (e.g., "15s")
func ParseFlags() *StructuredConfig {
	var driveAddress NetAddress
	var dbPath string
	var jsonConfigPath string
	var requestTimeout time.Duration
	var debounceInterval time.Duration

	flag.Var(&driveAddress, "a", "Drive API address host:port")
	flag.StringVar(&dbPath, "d", "", "Local SQLite cache path")
	flag.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	flag.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	flag.DurationVar(&requestTimeout, "request-timeout", 0, "Drive request timeout (e.g., 30s, 1m)")
	flag.DurationVar(&debounceInterval, "debounce-interval", 0, "Quiet period before auto-sync (e.g., 15s)")

	flag.Parse()

	return &StructuredConfig{
		Adapter: Adapter{
			Address:        driveAddress.String(),
			RequestTimeout: requestTimeout,
		},
		Storage: Storage{
			DB: DB{
				DSN: dbPath,
			},
		},
		Sync: Sync{
			DebounceInterval: debounceInterval,
		},
		JSONFilePath: jsonConfigPath,
	}
}

// String returns a canonical host:port string for a NetAddress.
// If neither Host nor Port are set, it returns an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 {
		return errors.New("port number is a positive integer")
	}

	if host != "localhost" {
		ip := net.ParseIP(hostAndPort[0])
		if ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
