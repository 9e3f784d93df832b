package ntuple

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog/log"
)

// ErrMalformed is wrapped by load errors caused by a weight file whose
// geometry does not match this network (wrong table count or a table
// cut short).
var ErrMalformed = errors.New("malformed weight file")

// ReadFrom replaces the network's tables with the ones read from r.
// The format is a uint32 little-endian table count followed by each
// table's entries as raw little-endian float64 values, in table order.
// On any error the network is left exactly as it was; the tables swap
// in only after the whole file has been read.
func (n *Network) ReadFrom(r io.Reader) error {
	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return fmt.Errorf("reading table count: %w", err)
	}
	if count != NumTuples {
		return fmt.Errorf("%w: got %d tables, want %d", ErrMalformed, count, NumTuples)
	}
	var staged [NumTuples][]float64
	for t := range staged {
		staged[t] = make([]float64, TableSize)
		if err := binary.Read(r, binary.LittleEndian, &staged[t]); err != nil {
			return fmt.Errorf("%w: table %d: %v", ErrMalformed, t, err)
		}
	}
	n.tables = staged
	return nil
}

// WriteTo writes the network in the format ReadFrom expects.
func (n *Network) WriteTo(w io.Writer) error {
	if err := binary.Write(w, binary.LittleEndian, uint32(NumTuples)); err != nil {
		return fmt.Errorf("writing table count: %w", err)
	}
	for t := range n.tables {
		if err := binary.Write(w, binary.LittleEndian, n.tables[t]); err != nil {
			return fmt.Errorf("writing table %d: %w", t, err)
		}
	}
	return nil
}

// Load reads a persisted network from path.
func (n *Network) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("opening weight file: %w", err)
	}
	defer f.Close()
	if err := n.ReadFrom(bufio.NewReader(f)); err != nil {
		return fmt.Errorf("loading %s: %w", path, err)
	}
	log.Info().Str("path", path).Msg("loaded weights")
	return nil
}

// Save writes the network to path, truncating any existing file.
func (n *Network) Save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating weight file: %w", err)
	}
	w := bufio.NewWriter(f)
	if err := n.WriteTo(w); err != nil {
		f.Close()
		return fmt.Errorf("saving %s: %w", path, err)
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return fmt.Errorf("saving %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	log.Info().Str("path", path).Msg("saved weights")
	return nil
}
