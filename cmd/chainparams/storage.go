// Copyright (c) 2024 The NeoBytes developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/pkg/errors"
	"gitlab.com/neobytes/neobytesd/types/chaincfg"
	"gitlab.com/neobytes/neobytesd/types/chainhash"
)

// CheckpointRow is one CSV line of a checkpoint export.
type CheckpointRow struct {
	Network string `csv:"network"`
	Height  int32  `csv:"height"`
	Hash    string `csv:"hash"`
}

type CheckpointRows []CheckpointRow

func rowsFromParams(params *chaincfg.Params) CheckpointRows {
	points := params.Checkpoints.Checkpoints()
	rows := make(CheckpointRows, 0, len(points))
	for _, cp := range points {
		rows = append(rows, CheckpointRow{
			Network: params.Name,
			Height:  cp.Height,
			Hash:    cp.Hash.String(),
		})
	}
	return rows
}

// Checkpoints decodes the rows back into checkpoints.
func (rows CheckpointRows) Checkpoints() ([]chaincfg.Checkpoint, error) {
	points := make([]chaincfg.Checkpoint, 0, len(rows))
	for _, row := range rows {
		hash, err := chainhash.NewHashFromStr(row.Hash)
		if err != nil {
			return nil, errors.Wrapf(err, "checkpoint at height %d", row.Height)
		}
		points = append(points, chaincfg.Checkpoint{Height: row.Height, Hash: *hash})
	}
	return points, nil
}

type CSVStorage struct {
	path string
	file *os.File
}

func NewCSVStorage(path string) *CSVStorage {
	return &CSVStorage{path: path}
}

func (storage *CSVStorage) open(readOnly bool) error {
	mode := os.O_RDWR | os.O_CREATE | os.O_TRUNC
	if readOnly {
		mode = os.O_RDONLY
	}

	file, err := os.OpenFile(storage.path, mode, 0644)
	storage.file = file
	return err
}

func (storage *CSVStorage) Close() {
	if storage.file != nil {
		_ = storage.file.Close()
	}
}

func (storage *CSVStorage) FetchData() (CheckpointRows, error) {
	if err := storage.open(true); err != nil {
		return nil, err
	}
	defer storage.Close()

	rows := make(CheckpointRows, 0)
	err := gocsv.UnmarshalFile(storage.file, &rows)
	return rows, err
}

func (storage *CSVStorage) SaveRows(rows CheckpointRows) error {
	if err := storage.open(false); err != nil {
		return err
	}
	defer storage.Close()

	return gocsv.MarshalFile(&rows, storage.file)
}

func writeRows(w io.Writer, rows CheckpointRows) error {
	return gocsv.Marshal(&rows, w)
}
