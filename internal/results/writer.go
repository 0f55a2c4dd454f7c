package results

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/ElmaazouziSara/song-stream-daily/internal/loader"
	"github.com/ElmaazouziSara/song-stream-daily/internal/ranking"
	"github.com/ElmaazouziSara/song-stream-daily/pkg/logs"

	"github.com/pierrec/xxHash/xxHash32"
)

// Daily is one processed day's output: the date and its two rankings.
type Daily struct {
	Date    time.Time
	Country ranking.Country
	User    ranking.User
}

// Artifact is one written ranking file and the xxHash32 of its content.
type Artifact struct {
	Path     string
	Checksum uint32
}

type Artifacts struct {
	Country Artifact
	User    Artifact
}

// CountryFileName maps a date to its country artifact name, e.g. country_top5020260823.txt.
func CountryFileName(date time.Time) string {
	return fmt.Sprintf("country_top50%s.txt", date.Format(loader.DateLayout))
}

// UserFileName maps a date to its user artifact name, e.g. user_top5020260823.txt.
func UserFileName(date time.Time) string {
	return fmt.Sprintf("user_top50%s.txt", date.Format(loader.DateLayout))
}

// Write persists the day's two artifacts under outDir. Rows are
// pipe-delimited `key|rank|song_id|play_count`, with group keys sorted so the
// same input always produces byte-identical files. Both artifacts are staged
// to temp files and renamed into place only once fully written, so an
// aborted run never leaves a partial artifact; existing artifacts for the
// date are replaced, never appended to.
func Write(res Daily, outDir string) (Artifacts, error) {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		return Artifacts{}, err
	}

	countryData := encode(res.Country)
	userData := encode(res.User)

	countryPath := filepath.Join(outDir, CountryFileName(res.Date))
	userPath := filepath.Join(outDir, UserFileName(res.Date))

	countryTmp, err := stage(outDir, countryData)
	if err != nil {
		return Artifacts{}, err
	}
	userTmp, err := stage(outDir, userData)
	if err != nil {
		removeTemp(countryTmp)
		return Artifacts{}, err
	}

	if err := os.Rename(countryTmp, countryPath); err != nil {
		removeTemp(countryTmp)
		removeTemp(userTmp)
		return Artifacts{}, err
	}
	if err := os.Rename(userTmp, userPath); err != nil {
		removeTemp(userTmp)
		return Artifacts{}, err
	}

	return Artifacts{
		Country: Artifact{Path: countryPath, Checksum: xxHash32.Checksum(countryData, 0)},
		User:    Artifact{Path: userPath, Checksum: xxHash32.Checksum(userData, 0)},
	}, nil
}

// encode joins fields verbatim, no quoting or escaping: the log parser
// splits on the same delimiter, so no key or song id can ever contain one.
func encode(groups map[string][]ranking.Entry) []byte {
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var buf bytes.Buffer
	for _, k := range keys {
		for _, e := range groups[k] {
			fmt.Fprintf(&buf, "%s|%d|%s|%d\n", k, e.Rank, e.SongId, e.PlayCount)
		}
	}
	return buf.Bytes()
}

func stage(dir string, data []byte) (string, error) {
	tmp, err := os.CreateTemp(dir, ".top50-*.tmp")
	if err != nil {
		return "", err
	}
	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		removeTemp(tmp.Name())
		return "", err
	}
	if err := tmp.Close(); err != nil {
		removeTemp(tmp.Name())
		return "", err
	}
	return tmp.Name(), nil
}

func removeTemp(path string) {
	if err := os.Remove(path); err != nil {
		logs.Logger.Errorf("error removing temp file %s: %v", path, err)
	}
}
