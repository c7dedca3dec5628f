// Package store persists media-center state in SQLite: installed apps, the
// store cart, settings toggles and the community chat log.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// Memory opens a private in-memory database that is discarded on Close.
const Memory = ":memory:"

// Store wraps the database connection.
type Store struct {
	conn *sql.DB
	path string
	now  func() time.Time
}

// CartItem is one product line in the cart.
type CartItem struct {
	ProductID string
	Quantity  int
}

// Message is one chat log entry.
type Message struct {
	ID     int64
	Author string
	Body   string
	At     time.Time
}

// DefaultPath returns the database location under the user config dir.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "tvnav", "tvnav.db"), nil
}

// Open opens or creates the database at path and applies the schema.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("database path is empty")
	}
	if path != Memory {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	conn, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	// :memory: databases live and die with their connection.
	conn.SetMaxOpenConns(1)

	if path != Memory {
		if _, err := conn.Exec("PRAGMA journal_mode=WAL"); err != nil {
			conn.Close()
			return nil, fmt.Errorf("enable WAL mode: %w", err)
		}
	}
	if _, err := conn.Exec("PRAGMA busy_timeout=500"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("set busy timeout: %w", err)
	}
	if _, err := conn.Exec(schema); err != nil {
		conn.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{conn: conn, path: path, now: time.Now}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.conn.Close()
}

// Path returns the database location.
func (s *Store) Path() string {
	return s.path
}

// InstalledApps returns the ids of installed apps.
func (s *Store) InstalledApps() (map[string]bool, error) {
	rows, err := s.conn.Query(`SELECT app_id FROM installed_apps`)
	if err != nil {
		return nil, fmt.Errorf("query installed apps: %w", err)
	}
	defer rows.Close()
	out := make(map[string]bool)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan installed app: %w", err)
		}
		out[id] = true
	}
	return out, rows.Err()
}

// SetInstalled records whether an app is installed.
func (s *Store) SetInstalled(appID string, installed bool) error {
	var err error
	if installed {
		_, err = s.conn.Exec(
			`INSERT INTO installed_apps (app_id, installed_at) VALUES (?, ?)
			 ON CONFLICT(app_id) DO NOTHING`,
			appID, s.now().UnixNano())
	} else {
		_, err = s.conn.Exec(`DELETE FROM installed_apps WHERE app_id = ?`, appID)
	}
	if err != nil {
		return fmt.Errorf("set installed %s: %w", appID, err)
	}
	return nil
}

// Cart returns the cart lines in the order products were first added.
func (s *Store) Cart() ([]CartItem, error) {
	rows, err := s.conn.Query(`SELECT product_id, quantity FROM cart_items ORDER BY added_at, product_id`)
	if err != nil {
		return nil, fmt.Errorf("query cart: %w", err)
	}
	defer rows.Close()
	var out []CartItem
	for rows.Next() {
		var item CartItem
		if err := rows.Scan(&item.ProductID, &item.Quantity); err != nil {
			return nil, fmt.Errorf("scan cart item: %w", err)
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

// AddToCart adds one unit of a product and returns the new quantity.
func (s *Store) AddToCart(productID string) (int, error) {
	_, err := s.conn.Exec(
		`INSERT INTO cart_items (product_id, quantity, added_at) VALUES (?, 1, ?)
		 ON CONFLICT(product_id) DO UPDATE SET quantity = quantity + 1`,
		productID, s.now().UnixNano())
	if err != nil {
		return 0, fmt.Errorf("add %s to cart: %w", productID, err)
	}
	var qty int
	if err := s.conn.QueryRow(`SELECT quantity FROM cart_items WHERE product_id = ?`, productID).Scan(&qty); err != nil {
		return 0, fmt.Errorf("read cart quantity: %w", err)
	}
	return qty, nil
}

// RemoveFromCart drops a product line entirely.
func (s *Store) RemoveFromCart(productID string) error {
	if _, err := s.conn.Exec(`DELETE FROM cart_items WHERE product_id = ?`, productID); err != nil {
		return fmt.Errorf("remove %s from cart: %w", productID, err)
	}
	return nil
}

// ClearCart empties the cart.
func (s *Store) ClearCart() error {
	if _, err := s.conn.Exec(`DELETE FROM cart_items`); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	return nil
}

// Settings returns stored toggles. Keys never written are absent.
func (s *Store) Settings() (map[string]bool, error) {
	rows, err := s.conn.Query(`SELECT key, enabled FROM settings`)
	if err != nil {
		return nil, fmt.Errorf("query settings: %w", err)
	}
	defer rows.Close()
	out := make(map[string]bool)
	for rows.Next() {
		var key string
		var enabled int
		if err := rows.Scan(&key, &enabled); err != nil {
			return nil, fmt.Errorf("scan setting: %w", err)
		}
		out[key] = enabled != 0
	}
	return out, rows.Err()
}

// SetSetting stores a toggle.
func (s *Store) SetSetting(key string, enabled bool) error {
	v := 0
	if enabled {
		v = 1
	}
	_, err := s.conn.Exec(
		`INSERT INTO settings (key, enabled) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET enabled = excluded.enabled`,
		key, v)
	if err != nil {
		return fmt.Errorf("set setting %s: %w", key, err)
	}
	return nil
}

// ResetSettings forgets every stored toggle.
func (s *Store) ResetSettings() error {
	if _, err := s.conn.Exec(`DELETE FROM settings`); err != nil {
		return fmt.Errorf("reset settings: %w", err)
	}
	return nil
}

// AppendMessage stores a chat message and returns it with its id.
func (s *Store) AppendMessage(author, body string) (Message, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return Message{}, errors.New("message is empty")
	}
	at := s.now()
	res, err := s.conn.Exec(
		`INSERT INTO chat_messages (author, body, created_at) VALUES (?, ?, ?)`,
		author, body, at.UnixNano())
	if err != nil {
		return Message{}, fmt.Errorf("append message: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return Message{}, fmt.Errorf("read message id: %w", err)
	}
	return Message{ID: id, Author: author, Body: body, At: at}, nil
}

// Messages returns up to limit of the newest messages, oldest first. A
// limit of zero or less returns all of them.
func (s *Store) Messages(limit int) ([]Message, error) {
	query := `SELECT id, author, body, created_at FROM chat_messages ORDER BY id DESC`
	args := []interface{}{}
	if limit > 0 {
		query += ` LIMIT ?`
		args = append(args, limit)
	}
	rows, err := s.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query messages: %w", err)
	}
	defer rows.Close()
	var out []Message
	for rows.Next() {
		var m Message
		var at int64
		if err := rows.Scan(&m.ID, &m.Author, &m.Body, &at); err != nil {
			return nil, fmt.Errorf("scan message: %w", err)
		}
		m.At = time.Unix(0, at)
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out, nil
}
