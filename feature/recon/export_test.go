package recon

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"mini-reconcile/core/storage/mocks"
	"mini-reconcile/core/table"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEncodeCSV(t *testing.T) {
	dataset := table.New("transaction_reference", "amount", "status")
	dataset.Append(table.Row{"transaction_reference": "T1", "amount": int64(100), "status": "OK"})
	dataset.Append(table.Row{"transaction_reference": "T2", "amount": 12.5, "status": nil})

	data, err := EncodeCSV(dataset)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(string(data), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "transaction_reference,amount,status", lines[0])
	assert.Equal(t, "T1,100,OK", lines[1])
	assert.Equal(t, "T2,12.5,", lines[2])
}

func TestExportDir(t *testing.T) {
	svc := newTestService(t, nil)
	report, err := svc.Run(
		txDataset(tx("T1", 100, "OK"), tx("T2", 50, "OK")),
		txDataset(tx("T1", 100, "OK"), tx("T2", 75, "OK"), tx("T9", 10, "OK")),
	)
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "export")
	require.NoError(t, ExportDir(report, dir))

	for _, name := range exportFilenames {
		data, err := os.ReadFile(filepath.Join(dir, name))
		require.NoError(t, err)
		assert.NotEmpty(t, data)
	}

	matched, err := os.ReadFile(filepath.Join(dir, "matched.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(matched), "T1")

	onlyProvider, err := os.ReadFile(filepath.Join(dir, "only_provider.csv"))
	require.NoError(t, err)
	assert.Contains(t, string(onlyProvider), "T9")
}

func TestExportBucket(t *testing.T) {
	svc := newTestService(t, nil)
	report, err := svc.Run(
		txDataset(tx("T1", 100, "OK")),
		txDataset(tx("T1", 100, "OK")),
	)
	require.NoError(t, err)

	client := new(mocks.Client)
	for _, name := range exportFilenames {
		client.On("PutObject", mock.Anything, "reports", "run-42/"+name,
			mock.Anything, mock.Anything, mock.Anything).
			Return(minio.UploadInfo{}, nil).Once()
	}

	err = ExportBucket(context.Background(), client, "reports", "run-42", report)
	require.NoError(t, err)
	client.AssertExpectations(t)
}
