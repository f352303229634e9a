package prune

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestWriteCheckedReadCheckedRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample")
	payload := []byte("some packed shard bytes")

	require.NoError(t, writeChecked(path, payload))
	got, err := readChecked(path, len(payload))
	require.NoError(t, err)
	require.Equal(t, payload, got)
	require.True(t, fileIntact(path, len(payload)))
}

func TestReadCheckedDetectsCorruption(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample")
	payload := []byte("some packed shard bytes")
	require.NoError(t, writeChecked(path, payload))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	data[0] ^= 0xff
	require.NoError(t, os.WriteFile(path, data, 0o644))

	_, err = readChecked(path, len(payload))
	require.Error(t, err, "readChecked accepted a corrupted payload")
	require.False(t, fileIntact(path, len(payload)), "fileIntact reported a corrupted file as intact")
}

func TestReadCheckedDetectsWrongLength(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "sample")
	require.NoError(t, writeChecked(path, []byte("short")))
	_, err := readChecked(path, 999)
	require.Error(t, err, "readChecked accepted a payload of the wrong length")
}

func TestWordsToPayloadRoundTrip(t *testing.T) {
	words := []uint32{0, 1, 0xffffffff, 0xdeadbeef, 123456789}
	payload := wordsToPayload(words)
	got := payloadToWords(payload)
	require.Equal(t, words, got)
}

func TestTablesPresentFalseWhenMissing(t *testing.T) {
	dir := t.TempDir()
	require.False(t, TablesPresent(dir), "TablesPresent reported true in an empty directory")
}

func TestTableFileNamesCoversEveryShardAndCornerFile(t *testing.T) {
	names := TableFileNames("/tmp/example")
	require.Len(t, names, 36, "35 shards + cornerprun")
	require.Equal(t, "cornerprun", filepath.Base(names[len(names)-1]))
}
