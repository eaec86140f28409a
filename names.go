package mapart

import (
	"fmt"
	"path"
	"regexp"
	"strings"
)

const (
	// UnknownName is used when nothing usable is left of a file name.
	UnknownName = "unknown_img"
	// PlaceholderUUID stands in for a player id that could not be found.
	PlaceholderUUID = "YOUR-UUID-GOES-HERE"

	maxNameLen = 12
)

var nameStrip = regexp.MustCompile(`[^a-zA-Z0-9_]`)

// ScriptName turns an uploaded file name into the short identifier the
// import function accepts: base name without extension, letters, digits and
// underscores only, at most 12 characters.
func ScriptName(filename string) string {
	name := path.Base(strings.ReplaceAll(filename, `\`, "/"))
	if name == "." || name == "/" {
		return UnknownName
	}
	if i := strings.IndexByte(name, '.'); i >= 0 {
		name = name[:i]
	}
	name = nameStrip.ReplaceAllString(name, "")
	if len(name) > maxNameLen {
		name = name[:maxNameLen]
	}
	if name == "" {
		return UnknownName
	}
	return name
}

// ImportCommand is the chat command that loads an uploaded script.
func ImportCommand(key, uuid, name string) string {
	if uuid == "" {
		uuid = PlaceholderUUID
	}
	return fmt.Sprintf(`/func execute akmap::add("%s", "%s", "%s")`, key, uuid, name)
}

// FormatUUID inserts dashes into a 32 digit hex id (8-4-4-4-12). Other
// lengths are returned unchanged.
func FormatUUID(id string) string {
	if len(id) != 32 {
		return id
	}
	return id[:8] + "-" + id[8:12] + "-" + id[12:16] + "-" + id[16:20] + "-" + id[20:]
}
