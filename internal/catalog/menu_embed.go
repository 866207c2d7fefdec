package catalog

import _ "embed"

// defaultMenu ships a full menu so the service runs without any external
// files. MENU_PATH replaces it at startup.
//
//go:embed menu.yaml
var defaultMenu []byte
