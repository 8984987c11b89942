package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRootCmd_Exists verifies the root command structure.
func TestRootCmd_Exists(t *testing.T) {
	require.NotNil(t, rootCmd, "Root command should exist")
	assert.Equal(t, "avdb", rootCmd.Use,
		"Command name should be avdb")
	assert.True(t, rootCmd.SilenceUsage,
		"Usage should not print on runtime errors")
}

// TestRootCmd_Subcommands verifies all lifecycle commands are
// registered.
func TestRootCmd_Subcommands(t *testing.T) {
	want := []string{"schema", "migrate", "taxa", "load", "check"}

	for _, name := range want {
		found := false
		for _, sub := range rootCmd.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		assert.True(t, found, "Subcommand %s should be registered", name)
	}
}

// TestGetSchemaCmd verifies the schema command.
func TestGetSchemaCmd(t *testing.T) {
	cmd := getSchemaCmd()
	require.NotNil(t, cmd, "Schema command should exist")
	assert.Equal(t, "schema", cmd.Use)
	assert.NotNil(t, cmd.RunE, "RunE should be set")

	assert.Contains(t, cmd.Long, "GORM AutoMigrate",
		"Long description should mention GORM")
	assert.Contains(t, cmd.Long, "collation",
		"Long description should mention collation")

	forceFlag := cmd.Flags().Lookup("force")
	require.NotNil(t, forceFlag, "--force flag should exist")
	assert.Equal(t, "f", forceFlag.Shorthand)
	assert.Equal(t, "false", forceFlag.DefValue)
}

// TestGetMigrateCmd verifies the migrate command.
func TestGetMigrateCmd(t *testing.T) {
	cmd := getMigrateCmd()
	require.NotNil(t, cmd, "Migrate command should exist")
	assert.Equal(t, "migrate", cmd.Use)
	assert.NotNil(t, cmd.RunE, "RunE should be set")
	assert.Contains(t, cmd.Long, "non-destructive",
		"Long description should state migrations preserve data")
}

// TestGetTaxaCmd verifies the taxa command.
func TestGetTaxaCmd(t *testing.T) {
	cmd := getTaxaCmd()
	require.NotNil(t, cmd, "Taxa command should exist")
	assert.Equal(t, "taxa", cmd.Use)
	assert.NotNil(t, cmd.RunE, "RunE should be set")

	checklistFlag := cmd.Flags().Lookup("checklist")
	require.NotNil(t, checklistFlag, "--checklist flag should exist")
	assert.Equal(t, "c", checklistFlag.Shorthand)

	dictFlag := cmd.Flags().Lookup("dictionary")
	require.NotNil(t, dictFlag, "--dictionary flag should exist")
	assert.Equal(t, "d", dictFlag.Shorthand)
}

// TestGetLoadCmd verifies the load command and its flags.
func TestGetLoadCmd(t *testing.T) {
	cmd := getLoadCmd()
	require.NotNil(t, cmd, "Load command should exist")
	assert.Equal(t, "load", cmd.Use)
	assert.NotNil(t, cmd.RunE, "RunE should be set")

	datasetsFlag := cmd.Flags().Lookup("datasets")
	require.NotNil(t, datasetsFlag, "--datasets flag should exist")
	assert.Equal(t, "s", datasetsFlag.Shorthand)

	for _, name := range []string{"output", "dry-run", "accept-problems"} {
		assert.NotNil(t, cmd.Flags().Lookup(name),
			"--%s flag should exist", name)
	}
}

// TestGetCheckCmd verifies the check command.
func TestGetCheckCmd(t *testing.T) {
	cmd := getCheckCmd()
	require.NotNil(t, cmd, "Check command should exist")
	assert.Equal(t, "check", cmd.Use)
	assert.NotNil(t, cmd.RunE, "RunE should be set")

	assert.NotNil(t, cmd.Flags().Lookup("datasets"),
		"--datasets flag should exist")
	assert.NotNil(t, cmd.Flags().Lookup("output"),
		"--output flag should exist")

	// Check never has the write-phase flags.
	assert.Nil(t, cmd.Flags().Lookup("accept-problems"),
		"check should not expose --accept-problems")
}
