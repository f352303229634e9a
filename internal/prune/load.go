package prune

import "fmt"

// LoadOrBuild loads the fsstc and corner pruning tables from dir if
// every file is present and checksum-intact, otherwise builds both
// from scratch and persists them — the load/build switch of §6.
func LoadOrBuild(dir string) (*Table, CornerTable, error) {
	if TablesPresent(dir) {
		t, err := Load(dir)
		if err != nil {
			return nil, nil, err
		}
		ct, err := LoadCornerTable(dir)
		if err != nil {
			return nil, nil, err
		}
		return t, ct, nil
	}

	t := Build()
	if err := t.Save(dir); err != nil {
		return nil, nil, fmt.Errorf("prune: %w", err)
	}
	ct, err := BuildCornerDepth()
	if err != nil {
		return nil, nil, fmt.Errorf("prune: %w", err)
	}
	if err := SaveCornerTable(dir, ct); err != nil {
		return nil, nil, fmt.Errorf("prune: %w", err)
	}
	return t, ct, nil
}
