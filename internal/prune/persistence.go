package prune

import (
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gtank/blake2/blake2b"

	"github.com/ehrlich-b/bigoptcube/internal/coord"
)

// checksumSize is the length in bytes of the trailing blake2b-256
// digest every persisted table file carries.
const checksumSize = 32

func shardFileName(dir string, u int) string {
	return filepath.Join(dir, fmt.Sprintf("phase1x24x35_prun%d", u))
}

func cornerFileName(dir string) string {
	return filepath.Join(dir, "cornerprun")
}

// digest returns the blake2b-256 checksum of payload.
func digest(payload []byte) ([]byte, error) {
	d, err := blake2b.NewDigest(nil, nil, nil, checksumSize)
	if err != nil {
		return nil, err
	}
	if _, err := d.Write(payload); err != nil {
		return nil, err
	}
	return d.Sum(nil), nil
}

func wordsToPayload(words []uint32) []byte {
	payload := make([]byte, 4*len(words))
	for i, w := range words {
		binary.LittleEndian.PutUint32(payload[i*4:], w)
	}
	return payload
}

func payloadToWords(payload []byte) []uint32 {
	words := make([]uint32, len(payload)/4)
	for i := range words {
		words[i] = binary.LittleEndian.Uint32(payload[i*4:])
	}
	return words
}

// writeChecked writes payload followed by its blake2b-256 digest.
func writeChecked(path string, payload []byte) error {
	sum, err := digest(payload)
	if err != nil {
		return err
	}
	return os.WriteFile(path, append(payload, sum...), 0o644)
}

// readChecked reads path and verifies its trailing checksum, returning
// the payload with the checksum stripped off.
func readChecked(path string, wantLen int) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if len(data) != wantLen+checksumSize {
		return nil, fmt.Errorf("unexpected length %d, want %d", len(data), wantLen+checksumSize)
	}
	payload, sum := data[:wantLen], data[wantLen:]
	want, err := digest(payload)
	if err != nil {
		return nil, err
	}
	if string(want) != string(sum) {
		return nil, fmt.Errorf("checksum mismatch")
	}
	return payload, nil
}

func fileIntact(path string, wantLen int) bool {
	_, err := readChecked(path, wantLen)
	return err == nil
}

// TableFileNames returns the paths of every file a Build+Save cycle
// writes to dir, for callers that need to remove stale tables before
// forcing a rebuild.
func TableFileNames(dir string) []string {
	names := make([]string, 0, coord.NUDCorners+1)
	for u := 0; u < coord.NUDCorners; u++ {
		names = append(names, shardFileName(dir, u))
	}
	return append(names, cornerFileName(dir))
}

// TablesPresent reports whether all 35 fsstc shard files and the
// cornerprun file are present and checksum-intact in dir. A false
// result triggers a full rebuild per §6: the IOError of a missing or
// corrupt file is not recoverable by partial load.
func TablesPresent(dir string) bool {
	for u := 0; u < coord.NUDCorners; u++ {
		if !fileIntact(shardFileName(dir, u), 4*wordsPerShard) {
			return false
		}
	}
	return fileIntact(cornerFileName(dir), coord.NCorners)
}

// Save persists every shard to dir, each file a little-endian uint32
// sequence followed by a trailing blake2b-256 checksum of that
// payload. A write failure here is the spec's IOError (§7):
// unrecoverable, the caller aborts rather than retrying with a partial
// table.
func (t *Table) Save(dir string) error {
	for u, sh := range t.shards {
		if err := writeChecked(shardFileName(dir, u), wordsToPayload(sh.words)); err != nil {
			return fmt.Errorf("prune: saving shard %d: %w", u, err)
		}
	}
	return nil
}

// Load reads every shard back from dir, verifying each file's trailing
// checksum before trusting its payload.
func Load(dir string) (*Table, error) {
	t := &Table{}
	for u := 0; u < coord.NUDCorners; u++ {
		payload, err := readChecked(shardFileName(dir, u), 4*wordsPerShard)
		if err != nil {
			return nil, fmt.Errorf("prune: loading shard %d: %w", u, err)
		}
		t.shards[u] = &shard{words: payloadToWords(payload)}
	}
	return t, nil
}

// SaveCornerTable persists ct to dir's cornerprun file.
func SaveCornerTable(dir string, ct CornerTable) error {
	payload := make([]byte, len(ct))
	for i, v := range ct {
		payload[i] = byte(v)
	}
	if err := writeChecked(cornerFileName(dir), payload); err != nil {
		return fmt.Errorf("prune: saving cornerprun: %w", err)
	}
	return nil
}

// LoadCornerTable reads the corner_depth table back from dir's
// cornerprun file, verifying its checksum.
func LoadCornerTable(dir string) (CornerTable, error) {
	payload, err := readChecked(cornerFileName(dir), coord.NCorners)
	if err != nil {
		return nil, fmt.Errorf("prune: loading cornerprun: %w", err)
	}
	ct := make(CornerTable, coord.NCorners)
	for i, b := range payload {
		ct[i] = int8(b)
	}
	return ct, nil
}
