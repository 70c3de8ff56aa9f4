package main

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

var addedID = regexp.MustCompile(`Added (?:project|education) (\S+)`)

func TestProjectCommands_Lifecycle(t *testing.T) {
	setupHome(t)
	login(t)

	stdout := mustExecute(t, "project", "add",
		"--set", "title=Folio CLI",
		"--set", "tags=Go, Cobra,,",
		"--set", "link=https://example.com/folio",
	)
	match := addedID.FindStringSubmatch(stdout)
	require.Len(t, match, 2)
	id := match[1]
	require.NotEqual(t, pendingID, id)

	list := mustExecute(t, "project", "list")
	lines := strings.Split(strings.TrimSpace(list), "\n")
	require.Len(t, lines, 5)
	require.Contains(t, lines[4], "Folio CLI")

	require.Contains(t, mustExecute(t, "project", "get", id), "Go, Cobra")

	require.Contains(t, mustExecute(t, "project", "update", id, "--set", "title=Folio"), "Updated project")
	require.Contains(t, mustExecute(t, "project", "update", "2", "--set", "description=Rewritten"), "Updated project 2")

	doc := showDocument(t)
	projects := doc["projects"].([]interface{})
	require.Equal(t, "Rewritten", projects[1].(map[string]interface{})["description"])
	require.Equal(t, "Folio", projects[4].(map[string]interface{})["title"])
	require.Equal(t, []interface{}{"Go", "Cobra"}, projects[4].(map[string]interface{})["tags"])

	require.Contains(t, mustExecute(t, "project", "delete", "1"), "Deleted project 1")
	list = mustExecute(t, "project", "list")
	require.NotContains(t, list, "Neon Nexus")
	require.True(t, strings.HasPrefix(list, "2 "))
}

func TestProjectCommands_UnknownIDIsNoOp(t *testing.T) {
	setupHome(t)
	login(t)

	before := mustExecute(t, "show", "--json")
	require.Contains(t, mustExecute(t, "project", "delete", "missing"), "nothing changed")
	require.Contains(t, mustExecute(t, "project", "update", "missing", "--set", "title=Ghost"), "nothing changed")
	require.Equal(t, before, mustExecute(t, "show", "--json"))

	_, _, err := executeCommand("project", "get", "missing")
	require.Error(t, err)
}

func TestProjectCommands_ValidationErrors(t *testing.T) {
	setupHome(t)
	login(t)

	_, _, err := executeCommand("project", "add", "--set", "description=no title")
	require.Error(t, err)
	require.Contains(t, err.Error(), "validating values")

	_, _, err = executeCommand("project", "add", "--set", "title=Bad", "--set", "imageUrl=not a url")
	require.Error(t, err)

	require.Len(t, strings.Split(strings.TrimSpace(mustExecute(t, "project", "list")), "\n"), 4)
}

func TestEducationCommands_SequenceIDs(t *testing.T) {
	home := setupHome(t)
	writeConfig(t, home, "ids:\n  strategy: sequence\n")
	login(t)

	stdout := mustExecute(t, "education", "add", "--set", "school=MIT", "--set", "year=2024")
	match := addedID.FindStringSubmatch(stdout)
	require.Len(t, match, 2)
	require.Equal(t, "5", match[1])

	stdout = mustExecute(t, "education", "add", "--set", "school=ETH")
	require.Contains(t, stdout, "Added education 6")

	require.Contains(t, mustExecute(t, "education", "list"), "MIT, 2024")
	require.Contains(t, mustExecute(t, "education", "rm", "5"), "Deleted education 5")
}
