package text

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/go-text/typesetting/fontscan"

	"github.com/gogpu/pantext"
)

// fontscanLogger forwards fontscan diagnostics to the pantext logger.
type fontscanLogger struct{}

func (fontscanLogger) Printf(format string, args ...any) {
	pantext.Logger().Debug("text: fontscan: " + fmt.Sprintf(format, args...))
}

// systemFonts resolves font descriptions against the installed fonts.
// The index is built on first use; scanning the font directories is slow
// the first time and cached on disk afterwards.
type systemFonts struct {
	cacheDir string

	once    sync.Once
	fontMap *fontscan.FontMap
	err     error
}

func newSystemFonts(cacheDir string) *systemFonts {
	return &systemFonts{cacheDir: cacheDir}
}

func (s *systemFonts) init() error {
	s.once.Do(func() {
		dir := s.cacheDir
		if dir == "" {
			base, err := os.UserCacheDir()
			if err != nil {
				pantext.Logger().Warn("text: no user cache dir, using temp dir", "err", err)
				base = os.TempDir()
			}
			dir = filepath.Join(base, "pantext")
		}

		fm := fontscan.NewFontMap(fontscanLogger{})
		if err := fm.UseSystemFonts(dir); err != nil {
			s.err = fmt.Errorf("text: index system fonts: %w", err)
			return
		}
		s.fontMap = fm
	})
	return s.err
}

// find returns the location of the installed face of family that best
// matches style.
func (s *systemFonts) find(family, style string) (fontscan.Location, error) {
	if err := s.init(); err != nil {
		return fontscan.Location{}, err
	}

	// FindSystemFont matches the family only; the query below picks the
	// style. ResolveFace alone would silently substitute another family.
	loc, ok := s.fontMap.FindSystemFont(family)
	if !ok {
		return fontscan.Location{}, ErrFontNotFound
	}

	s.fontMap.SetQuery(fontscan.Query{
		Families: []string{family},
		Aspect:   ParseStyle(style),
	})
	if face := s.fontMap.ResolveFace(spaceProbe); face != nil {
		if styled := s.fontMap.FontLocation(face.Font); styled.File != "" {
			loc = styled
		}
	}
	return loc, nil
}

// load reads and parses the font file at loc.
func (s *systemFonts) load(loc fontscan.Location) ([]byte, int, error) {
	data, err := os.ReadFile(loc.File)
	if err != nil {
		return nil, 0, fmt.Errorf("text: read %s: %w", loc.File, err)
	}
	return data, int(loc.Index), nil
}
