package tracker

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestImportCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "problems.csv")
	content := "id,title,topic,difficulty,solved,time,attempts,confidence,solvedAt\n" +
		"c1,Two Sum,Array,easy,yes,15,1,5,2026-02-20\n" +
		"c2,Edit Distance,DP,Hard,no,,2,1,\n" +
		"\n" + // encoding/csv skips blank lines
		"c3,Broken,Graph,Impossible,no,,,,\n" +
		"c4,Bad Number,Graph,Medium,true,ten,,,\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	res, err := Import(path, DefaultImportConfig())
	require.NoError(t, err)

	require.Len(t, res.Problems, 2)
	assert.Equal(t, 2, res.Skipped)
	require.Len(t, res.Errors, 2)
	assert.Contains(t, res.Errors[0], "row 4")
	assert.Contains(t, res.Errors[1], "row 5")

	first := res.Problems[0]
	assert.Equal(t, "c1", first.ID)
	assert.Equal(t, Easy, first.Difficulty)
	assert.True(t, first.Solved)
	assert.Equal(t, 15, *first.TimeTaken)
	assert.Equal(t, "2026-02-20", *first.SolvedAt)

	second := res.Problems[1]
	assert.False(t, second.Solved)
	assert.Nil(t, second.TimeTaken)
	assert.Equal(t, 2, *second.AttemptCount)
	assert.Nil(t, second.SolvedAt)
}

func TestImportExcel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "problems.xlsx")

	f := excelize.NewFile()
	rows := [][]any{
		{"id", "title", "topic", "difficulty", "solved", "time", "attempts", "confidence", "solvedAt"},
		{"", "Number of Islands", "Graph", "Medium", "TRUE", 40, 3, 2, "2026-02-22"},
		{"x2", "Coin Change", "DP", "Medium", "FALSE", "", 1, "", ""},
	}
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	res, err := Import(path, DefaultImportConfig())
	require.NoError(t, err)
	assert.Empty(t, res.Errors)
	require.Len(t, res.Problems, 2)

	islands := res.Problems[0]
	assert.NotEmpty(t, islands.ID, "missing ids are generated")
	assert.Equal(t, "Graph", islands.Topic)
	assert.Equal(t, 40, *islands.TimeTaken)
	assert.Equal(t, 3, *islands.AttemptCount)
	assert.True(t, islands.Solved)

	assert.Equal(t, "x2", res.Problems[1].ID)
	assert.False(t, res.Problems[1].Solved)
}

func TestImportUnsupported(t *testing.T) {
	_, err := Import(filepath.Join(t.TempDir(), "problems.txt"), DefaultImportConfig())
	assert.Error(t, err)
}

func TestColumnToIndex(t *testing.T) {
	assert.Equal(t, 0, columnToIndex("A"))
	assert.Equal(t, 8, columnToIndex("i"))
	assert.Equal(t, 26, columnToIndex("AA"))
	assert.Equal(t, -1, columnToIndex("1"))
}

func TestImportBlankIDIsStable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "problems.csv")
	content := "id,title,topic,difficulty\n" +
		",Word Ladder,Graph,Hard\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	first, err := Import(path, DefaultImportConfig())
	require.NoError(t, err)
	again, err := Import(path, DefaultImportConfig())
	require.NoError(t, err)
	require.Len(t, first.Problems, 1)
	require.Len(t, again.Problems, 1)
	assert.Equal(t, first.Problems[0].ID, again.Problems[0].ID)
	assert.Equal(t, importedID("WORD LADDER", "graph"), first.Problems[0].ID)
	assert.NotEqual(t, importedID("Word Ladder", "BFS"), first.Problems[0].ID)

	svc, _ := newTestService(t)
	ctx := context.Background()
	before, err := svc.List(ctx)
	require.NoError(t, err)

	res, err := svc.Merge(ctx, first.Problems)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Created)
	res, err = svc.Merge(ctx, again.Problems)
	require.NoError(t, err)
	assert.Equal(t, 0, res.Created)
	assert.Equal(t, 1, res.Updated)

	after, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, after, len(before)+1)
}

func TestImportRejectsBadDate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "problems.csv")
	content := "id,title,topic,difficulty,solved,time,attempts,confidence,solvedAt\n" +
		"d1,Two Sum,Array,Easy,yes,15,1,5,20/02/2026\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	res, err := Import(path, DefaultImportConfig())
	require.NoError(t, err)
	assert.Empty(t, res.Problems)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "solvedAt")
}
