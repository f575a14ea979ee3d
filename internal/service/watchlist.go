package service

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goodnatureofminers/cosign-orchestrator/internal/ledger"
	"github.com/goodnatureofminers/cosign-orchestrator/internal/stream"
)

// WatchEntry is an address the monitor subscribes to and the channels it wants.
type WatchEntry struct {
	Address string
	Options stream.AddressOptions
}

type watchListFile struct {
	Addresses []struct {
		Address  string   `yaml:"address"`
		Channels []string `yaml:"channels"`
	} `yaml:"addresses"`
}

// LoadWatchList reads a YAML watch list. An empty path yields no entries.
//
//	addresses:
//	  - address: TALICE...
//	  - address: TBOB...
//	    channels: [partial, cosignature, status]
//
// Entries without channels watch every address channel.
func LoadWatchList(path string) ([]WatchEntry, error) {
	if path == "" {
		return nil, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read watch list: %w", err)
	}
	entries, err := ParseWatchList(data)
	if err != nil {
		return nil, fmt.Errorf("watch list %s: %w", path, err)
	}
	return entries, nil
}

// ParseWatchList decodes the YAML watch list format.
func ParseWatchList(data []byte) ([]WatchEntry, error) {
	var file watchListFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode watch list: %w", err)
	}

	entries := make([]WatchEntry, 0, len(file.Addresses))
	for i, item := range file.Addresses {
		address := ledger.NormalizeAddress(item.Address)
		if address == "" {
			return nil, fmt.Errorf("entry %d: address is required", i)
		}
		opts, err := parseChannels(item.Channels)
		if err != nil {
			return nil, fmt.Errorf("entry %d (%s): %w", i, address, err)
		}
		entries = append(entries, WatchEntry{Address: address, Options: opts})
	}
	return MergeWatchList(entries), nil
}

func parseChannels(names []string) (stream.AddressOptions, error) {
	if len(names) == 0 {
		return stream.AllAddressChannels(), nil
	}
	var opts stream.AddressOptions
	for _, name := range names {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "confirmed":
			opts.Confirmed = true
		case "unconfirmed":
			opts.Unconfirmed = true
		case "partial":
			opts.Partial = true
		case "status":
			opts.Status = true
		case "cosignature":
			opts.Cosignature = true
		default:
			return stream.AddressOptions{}, fmt.Errorf("unknown channel %q", name)
		}
	}
	return opts, nil
}

// MergeWatchList drops empty addresses and merges duplicates, enabling the
// union of their channels. Order of first appearance is kept.
func MergeWatchList(entries ...[]WatchEntry) []WatchEntry {
	index := make(map[string]int)
	var out []WatchEntry
	for _, list := range entries {
		for _, e := range list {
			address := ledger.NormalizeAddress(e.Address)
			if address == "" {
				continue
			}
			i, ok := index[address]
			if !ok {
				index[address] = len(out)
				out = append(out, WatchEntry{Address: address, Options: e.Options})
				continue
			}
			o := &out[i].Options
			o.Confirmed = o.Confirmed || e.Options.Confirmed
			o.Unconfirmed = o.Unconfirmed || e.Options.Unconfirmed
			o.Partial = o.Partial || e.Options.Partial
			o.Status = o.Status || e.Options.Status
			o.Cosignature = o.Cosignature || e.Options.Cosignature
		}
	}
	return out
}

// WatchAll builds entries watching every channel for addresses.
func WatchAll(addresses ...string) []WatchEntry {
	out := make([]WatchEntry, 0, len(addresses))
	for _, a := range addresses {
		out = append(out, WatchEntry{Address: a, Options: stream.AllAddressChannels()})
	}
	return out
}
