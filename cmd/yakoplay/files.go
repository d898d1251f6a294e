package main

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// audioExts lists extensions worth handing to the native library. The
// demuxing itself happens there; this only filters obvious non-audio
// files out of folder scans.
var audioExts = map[string]bool{
	".mp3":  true,
	".flac": true,
	".ogg":  true,
	".oga":  true,
	".opus": true,
	".m4a":  true,
	".aac":  true,
	".wav":  true,
	".wma":  true,
}

// collectFiles expands the command line arguments into a sorted list of
// playable files. Directories are scanned one level deep; explicit file
// arguments are taken as-is.
func collectFiles(args []string, defaultFolder string) ([]string, error) {
	if len(args) == 0 {
		if defaultFolder == "" {
			return nil, nil
		}
		args = []string{defaultFolder}
	}

	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}
		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, err
		}
		for _, e := range entries {
			if e.IsDir() {
				continue
			}
			if audioExts[strings.ToLower(filepath.Ext(e.Name()))] {
				files = append(files, filepath.Join(arg, e.Name()))
			}
		}
	}

	sort.Strings(files)
	return files, nil
}
