// Package menufile stores the menu in a plain text file, one item per line:
//
//	id,name,category,price,availableFlag
//
// A flag of "1" marks the item available; any other value marks it unavailable.
package menufile

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"foodorder/internal/core/domain/model/kernel"
	"foodorder/internal/core/domain/model/menu"
)

const fieldCount = 5

// Repository implements ports.MenuRepository over a single file.
type Repository struct {
	mu     sync.Mutex
	path   string
	logger *slog.Logger
}

func NewRepository(path string, logger *slog.Logger) *Repository {
	return &Repository{
		path:   path,
		logger: logger.With("component", "menu_file", "path", path),
	}
}

// Load reads the menu. Blank lines, lines with fewer than five fields, unparsable numbers,
// invalid items and repeated ids are skipped with a warning. A missing file yields an
// empty menu.
func (r *Repository) Load(ctx context.Context) ([]menu.Item, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	f, err := os.Open(r.path)
	if errors.Is(err, fs.ErrNotExist) {
		r.logger.WarnContext(ctx, "Menu file not found, starting with an empty menu")
		return []menu.Item{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open menu file: %w", err)
	}
	defer f.Close()

	return r.parse(ctx, f)
}

func (r *Repository) parse(ctx context.Context, src io.Reader) ([]menu.Item, error) {
	items := make([]menu.Item, 0)
	seen := make(map[menu.ItemID]struct{})

	scanner := bufio.NewScanner(src)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		item, err := ParseLine(line)
		if err != nil {
			r.logger.WarnContext(ctx, "Skipping menu line", "line", lineNo, "error", err)
			continue
		}
		if _, dup := seen[item.ID()]; dup {
			r.logger.WarnContext(ctx, "Skipping menu line with repeated id", "line", lineNo, "item_id", int(item.ID()))
			continue
		}
		seen[item.ID()] = struct{}{}
		items = append(items, item)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read menu file: %w", err)
	}

	return items, nil
}

// ParseLine decodes one menu record. Fields past the fifth are ignored.
func ParseLine(line string) (menu.Item, error) {
	parts := strings.Split(strings.TrimSpace(line), ",")
	if len(parts) < fieldCount {
		return menu.Item{}, fmt.Errorf("expected %d fields, got %d", fieldCount, len(parts))
	}

	id, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return menu.Item{}, fmt.Errorf("parse id: %w", err)
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(parts[3]))
	if err != nil {
		return menu.Item{}, fmt.Errorf("parse price: %w", err)
	}
	price, err := kernel.NewMoney(amount)
	if err != nil {
		return menu.Item{}, err
	}

	available := strings.TrimSpace(parts[4]) == "1"

	return menu.NewItem(menu.ItemID(id), parts[1], strings.TrimSpace(parts[2]), price, available)
}

// FormatLine encodes one menu record without a trailing newline.
func FormatLine(item menu.Item) string {
	flag := 0
	if item.IsAvailable() {
		flag = 1
	}
	return fmt.Sprintf("%d,%s,%s,%s,%d", item.ID(), item.Name(), item.Category(), item.Price().Plain(), flag)
}

// Save rewrites the whole file. The new content is written to a temporary file in the
// same directory and renamed over the old one.
func (r *Repository) Save(ctx context.Context, items []menu.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(r.path), filepath.Base(r.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temporary menu file: %w", err)
	}
	defer os.Remove(tmp.Name()) //nolint:errcheck // already renamed on success

	w := bufio.NewWriter(tmp)
	for _, item := range items {
		if _, err = fmt.Fprintln(w, FormatLine(item)); err != nil {
			tmp.Close()
			return fmt.Errorf("write menu file: %w", err)
		}
	}
	if err = w.Flush(); err != nil {
		tmp.Close()
		return fmt.Errorf("write menu file: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close menu file: %w", err)
	}
	if err = os.Rename(tmp.Name(), r.path); err != nil {
		return fmt.Errorf("replace menu file: %w", err)
	}

	r.logger.DebugContext(ctx, "Menu saved", "items", len(items))
	return nil
}
