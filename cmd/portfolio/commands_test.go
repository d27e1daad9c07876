package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/student-portfolio/internal/board"
	"github.com/jonathan/student-portfolio/internal/parsing"
	"github.com/jonathan/student-portfolio/internal/profile"
	"github.com/jonathan/student-portfolio/internal/types"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestTemplateCommand_File(t *testing.T) {
	out := filepath.Join(t.TempDir(), "template.csv")

	stdout, _, err := runCLI(t, "", "template", "--out", out)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Template written to: "+out)
	assert.Contains(t, stdout, "text/csv")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, parsing.GenerateTemplate(), string(data))
}

func TestTemplateCommand_Stdout(t *testing.T) {
	stdout, _, err := runCLI(t, "", "template", "--out", "-")
	require.NoError(t, err)
	assert.Equal(t, parsing.GenerateTemplate()+"\n", stdout)
}

func TestParseCommand(t *testing.T) {
	csv := "fullName,schoolName,coreStrengths,favoriteColor\n" +
		"\"Ana\",\"Central High\",\"Curious| Kind\",\"green\"\n" +
		"\"\",\"Central High\",\"\",\"\"\n"
	in := writeFile(t, "students.csv", csv)

	t.Run("stdout", func(t *testing.T) {
		stdout, stderr, err := runCLI(t, "", "parse", "--in", in)
		require.NoError(t, err)

		var records []types.ProfileRecord
		require.NoError(t, json.Unmarshal([]byte(stdout), &records))
		require.Len(t, records, 2)
		assert.Equal(t, "Ana", records[0].FullName)
		assert.Equal(t, []string{"Curious", "Kind"}, records[0].CoreStrengths)
		assert.Equal(t, "green", records[0].Extra["favoriteColor"])

		assert.Contains(t, stderr, "MISSING INFORMATION")
		assert.Contains(t, stderr, "fullName")
	})

	t.Run("file", func(t *testing.T) {
		out := filepath.Join(t.TempDir(), "records.json")
		stdout, _, err := runCLI(t, "", "parse", "--in", in, "--out", out)
		require.NoError(t, err)
		assert.Contains(t, stdout, "Records parsed: 2")
		assert.Contains(t, stdout, "Records written to: "+out)

		data, err := os.ReadFile(out)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"favoriteColor": "green"`)
	})
}

func TestParseCommand_HeaderOnly(t *testing.T) {
	in := writeFile(t, "empty.csv", "fullName,schoolName\n\n")

	_, _, err := runCLI(t, "", "parse", "--in", in)
	require.Error(t, err)
	assert.ErrorIs(t, err, profile.ErrNothingToImport)
}

func TestParseCommand_MissingIn(t *testing.T) {
	_, _, err := runCLI(t, "", "parse")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required")
}

func TestImportAndBoardCommands(t *testing.T) {
	boardFile := filepath.Join(t.TempDir(), "students.json")

	sample, err := json.Marshal(profile.SampleProfile())
	require.NoError(t, err)
	jsonPath := writeFile(t, "erica.json", string(sample))
	csvPath := writeFile(t, "class.csv", parsing.GenerateTemplate()+"\n\"\",\"x@y.z\",\"\",\"Lone School\"")

	stdout, _, err := runCLI(t, boardFile, "import", csvPath, jsonPath)
	require.NoError(t, err)
	assert.Contains(t, stdout, "Imported 2 profile(s) from class.csv (csv)")
	assert.Contains(t, stdout, "Imported 1 profile(s) from erica.json (json)")
	assert.Contains(t, stdout, "MISSING INFORMATION")

	stdout, _, err = runCLI(t, boardFile, "board", "list", "--json")
	require.NoError(t, err)
	var cards []board.Card
	require.NoError(t, json.Unmarshal([]byte(stdout), &cards))
	require.Len(t, cards, 3)
	assert.Equal(t, "John Smith", cards[0].Name)
	assert.Equal(t, "Sarah Johnson", cards[1].Name)
	assert.Equal(t, "Erica Cangan", cards[2].Name)

	stdout, _, err = runCLI(t, boardFile, "board", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "STUDENT PORTFOLIOS (3)")

	stdout, _, err = runCLI(t, boardFile, "board", "show", "STU-2024-EC-8472")
	require.NoError(t, err)
	assert.Contains(t, stdout, "The Visionary Collaborator")

	exportDir := t.TempDir()
	stdout, _, err = runCLI(t, boardFile, "board", "export", "STU-2024-EC-8472", "--dir", exportDir)
	require.NoError(t, err)
	exported := filepath.Join(exportDir, "erica-cangan.json")
	assert.Contains(t, stdout, exported)
	_, err = profile.LoadProfile(exported)
	require.NoError(t, err)

	stdout, _, err = runCLI(t, boardFile, "board", "remove", "STU-2024-EC-8472")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Removed STU-2024-EC-8472")

	_, _, err = runCLI(t, boardFile, "board", "show", "STU-2024-EC-8472")
	require.Error(t, err)
	assert.ErrorIs(t, err, board.ErrNotFound)
}

func TestImportCommand_UnknownFormat(t *testing.T) {
	path := writeFile(t, "notes.bin", "\x00\x01\x02\x03")

	_, _, err := runCLI(t, "", "import", path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "notes.bin")
}

func TestBoardList_Empty(t *testing.T) {
	stdout, _, err := runCLI(t, "", "board", "list")
	require.NoError(t, err)
	assert.Contains(t, stdout, "No students yet.")
}

func TestManualCommand(t *testing.T) {
	boardFile := filepath.Join(t.TempDir(), "students.json")

	stdout, _, err := runCLI(t, boardFile, "manual",
		"--name", "Maya Chen", "--school", "Westview",
		"--strengths", "Leader, Listener", "--passions", "Chess")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Maya Chen")
	assert.Contains(t, stdout, "Added STU-")

	stdout, _, err = runCLI(t, boardFile, "board", "list", "--json")
	require.NoError(t, err)
	assert.Contains(t, stdout, `"name": "Maya Chen"`)
}

func TestManualCommand_MissingSchool(t *testing.T) {
	_, _, err := runCLI(t, "", "manual", "--name", "Maya Chen")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "please fill in at least your name and school")
}

func TestManualCommand_ImageMustBeImage(t *testing.T) {
	img := writeFile(t, "photo.txt", "just some text")

	_, _, err := runCLI(t, "", "manual", "--name", "Maya", "--school", "Westview", "--image", img)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "must be an image")
}

func TestSampleCommand(t *testing.T) {
	stdout, _, err := runCLI(t, "", "sample", "--json")
	require.NoError(t, err)

	p, err := profile.DecodeProfile([]byte(stdout))
	require.NoError(t, err)
	assert.Equal(t, "Erica Cangan", p.FullName)
}

func TestSampleCommand_AddUsesConfigBoard(t *testing.T) {
	dir := t.TempDir()
	boardFile := filepath.Join(dir, "from-config.json")
	cfgPath := writeFile(t, "config.json", `{"board_path": "`+filepath.ToSlash(boardFile)+`"}`)

	resetFlags(rootCmd)
	rootCmd.SetOut(&strings.Builder{})
	rootCmd.SetArgs([]string{"--config", cfgPath, "sample", "--add"})
	require.NoError(t, rootCmd.Execute())
	assert.Equal(t, boardFile, settings.BoardPath)

	stdout, _, err := runCLI(t, boardFile, "board", "list", "--json")
	require.NoError(t, err)
	assert.Contains(t, stdout, "Erica Cangan")
}

func TestConfigFlag_InvalidConfig(t *testing.T) {
	cfgPath := writeFile(t, "config.json", `{"log_level": "loud"}`)

	_, _, err := runCLI(t, "", "--config", cfgPath, "sample")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log_level")
}

func TestYouTubeCommand(t *testing.T) {
	stdout, _, err := runCLI(t, "", "youtube", "https://youtu.be/dQw4w9WgXcQ")
	require.NoError(t, err)
	assert.Equal(t, "https://www.youtube.com/embed/dQw4w9WgXcQ\n", stdout)

	_, _, err = runCLI(t, "", "youtube", "https://vimeo.com/123")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a YouTube link")
}
