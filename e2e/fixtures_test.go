//go:build e2e && unix

package main

import (
	"os"
	"path/filepath"
)

// servicesTable uses ids that never appear in a cell, so finding one in the
// output means it was printed on exit
const servicesTable = `
[table]
caption = "Services"
columns = ["Name", "Owner"]

[[table.rows]]
id = "svc-github"
cells = ["GitHub", "platform"]
drawer = "Mirrors every repository hourly."

[[table.rows]]
id = "svc-mailhog"
cells = ["Mailhog", "qa"]

[[table.rows]]
id = "svc-archive"
cells = ["Archive", "ops"]
not_selectable = true

[ui]
selectable = true
drawers = true
collapsed_label = "show details"
expanded_label = "hide details"
log_file = "tablegrip.log"
`

// CreateTestWorkspace creates a temporary directory that becomes the
// working directory and HOME of the app
func (tf *TUITestFramework) CreateTestWorkspace() (string, error) {
	tf.workspace = tf.t.TempDir()
	return tf.workspace, nil
}

// WriteTable writes a table definition into the workspace
func (tf *TUITestFramework) WriteTable(name, content string) (string, error) {
	path := filepath.Join(tf.workspace, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return "", err
	}
	return path, nil
}

// startWithServices starts the app on servicesTable and waits for it to render
func (tf *TUITestFramework) startWithServices() error {
	if _, err := tf.CreateTestWorkspace(); err != nil {
		return err
	}
	path, err := tf.WriteTable("services.toml", servicesTable)
	if err != nil {
		return err
	}
	return tf.StartApp("-f", path)
}
