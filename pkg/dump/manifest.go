package dump

import (
	"path"
	"path/filepath"
	"strings"
)

// DefaultManifest lists the files to include in the dump, relative to the
// project root. Order is the order of sections in the output document.
var DefaultManifest = []string{
	// Query Library app (Vite React + TS + MUI)
	"query-library-app/package.json",
	"query-library-app/tsconfig.json",
	"query-library-app/vite.config.ts",
	"query-library-app/index.html",
	// App entry
	"query-library-app/src/main.tsx",
	"query-library-app/src/App.tsx",
	"query-library-app/src/index.css",
	// Types and data
	"query-library-app/src/types.ts",
	"query-library-app/src/data/mock.ts",
	// Layout and shared components
	"query-library-app/src/components/Layout/HeaderContext.tsx",
	"query-library-app/src/components/Layout/PageHeader.tsx",
	"query-library-app/src/components/Layout/Sidebar.tsx",
	// Feature components
	"query-library-app/src/components/FolderCard.tsx",
	"query-library-app/src/components/MiniQueryCard.tsx",
	// Pages
	"query-library-app/src/pages/Home.tsx",
	"query-library-app/src/pages/Folders.tsx",
	"query-library-app/src/pages/QueryDetail.tsx",
	"query-library-app/src/pages/SchedulesInbox.tsx",
}

// DefaultLanguages maps file suffixes to fence language tags.
var DefaultLanguages = map[string]string{
	".css":  "css",
	".html": "html",
	".js":   "javascript",
	".jsx":  "javascript",
	".json": "json",
	".md":   "markdown",
	".py":   "python",
	".ts":   "typescript",
	".tsx":  "tsx",
}

// LanguageFor returns the fence language tag for rel, or "" when its suffix
// is unmapped or absent. Lookup is case-insensitive.
func LanguageFor(rel string, languages map[string]string) string {
	suffix := strings.ToLower(Suffix(rel))
	if suffix == "" {
		return ""
	}
	return languages[suffix]
}

// Suffix returns the final extension of the base name of rel, including the dot.
// A dot at the start of the name does not start a suffix (".bashrc" has none,
// "..md" has ".md") and a trailing dot is not a suffix.
func Suffix(rel string) string {
	base := path.Base(filepath.ToSlash(rel))
	i := strings.LastIndex(base, ".")
	if i <= 0 || i == len(base)-1 {
		return ""
	}
	return base[i:]
}
