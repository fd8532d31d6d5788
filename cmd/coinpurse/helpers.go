package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jmallory/coinpurse/internal/common"
	"github.com/jmallory/coinpurse/internal/config"
	"github.com/jmallory/coinpurse/internal/ledger"
	"github.com/jmallory/coinpurse/internal/storage"
	"github.com/spf13/viper"
)

// initLedger opens the configured data file, loads it, and builds the ledger
// engine over it. Load never fails the command: missing or corrupt data
// degrades to an empty ledger. found reports whether a data file existed,
// so callers announce the loaded count only for an existing file.
func initLedger() (eng *ledger.Ledger, loaded int, found bool, err error) {
	dataPath := viper.GetString("data.path")
	if dataPath == "" {
		dataPath = config.DefaultDataPath
	}
	dataPath = config.ExpandPath(dataPath)

	store, err := storage.NewJSONStore(dataPath)
	if err != nil {
		return nil, 0, false, common.NewUserError("could not open expense store", err)
	}

	_, statErr := os.Stat(dataPath)
	found = statErr == nil

	loaded, err = store.Load()
	if err != nil {
		return nil, 0, false, err
	}

	return ledger.New(store), loaded, found, nil
}

// parseIndex parses a 1-based expense index from raw user input.
func parseIndex(raw string) (int, error) {
	index, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("index must be a number: %q", raw)
	}
	return index, nil
}
