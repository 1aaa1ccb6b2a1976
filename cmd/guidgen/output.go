package main

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/Lzww0608/guidgen"
)

// record is the structured form written by the json and yaml formats.
type record struct {
	ID      string     `json:"id" yaml:"id"`
	Version int        `json:"version" yaml:"version"`
	Variant string     `json:"variant" yaml:"variant"`
	Time    *time.Time `json:"time,omitempty" yaml:"time,omitempty"`
	Node    string     `json:"node,omitempty" yaml:"node,omitempty"`
}

func newRecord(u guidgen.UUID) record {
	v := u.Version()
	r := record{
		ID:      u.String(),
		Version: int(v),
		Variant: u.Variant().String(),
	}
	if v.IsTimeBased() {
		t := u.Time().UTC()
		r.Time = &t
	}
	if v.HasNodeID() {
		node := u.NodeID()
		r.Node = hex.EncodeToString(node[:])
	}
	return r
}

var formats = []string{"text", "urn", "hex", "base64", "guid", "json", "yaml"}

// writeIDs prints ids in the named format. Line formats write one ID per line;
// json and yaml write one document holding a list.
func writeIDs(w io.Writer, format string, ids []guidgen.UUID) error {
	var line func(guidgen.UUID) string
	switch format {
	case "text", "":
		line = guidgen.UUID.String
	case "urn":
		line = guidgen.UUID.URN
	case "hex":
		line = guidgen.UUID.EncodeToHex
	case "base64":
		line = guidgen.UUID.EncodeToBase64
	case "guid":
		line = func(u guidgen.UUID) string {
			b := u.GUIDBytes()
			return hex.EncodeToString(b[:])
		}
	case "json", "yaml":
		records := make([]record, len(ids))
		for i, id := range ids {
			records[i] = newRecord(id)
		}
		if format == "json" {
			enc := json.NewEncoder(w)
			enc.SetIndent("", "  ")
			return enc.Encode(records)
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(records); err != nil {
			return err
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q, want one of %v", format, formats)
	}

	for _, id := range ids {
		if _, err := fmt.Fprintln(w, line(id)); err != nil {
			return err
		}
	}
	return nil
}
