package adapters

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"

	"github.com/nitingoyal0996/gbif-sub000/internal/ports"
	"github.com/nitingoyal0996/gbif-sub000/internal/types"
)

const layersQuery = "SELECT table_name FROM gpkg_contents WHERE data_type = 'features'"

// GeoPackageAdapter opens GADM GeoPackages read-only through SQLite.
type GeoPackageAdapter struct{}

func NewGeoPackageAdapter() GeoPackageAdapter {
	return GeoPackageAdapter{}
}

func (a GeoPackageAdapter) Open(ctx context.Context, path string, maxConns int) (ports.ReferenceStorePort, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("reference dataset path is required")
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("reference dataset not found: " + path).
			WithCause(err)
	}
	if info.IsDir() {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("reference dataset is a directory: " + path)
	}
	dsn, err := readOnlyDSN(path)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("failed to open reference dataset").
			WithCause(err)
	}
	if maxConns < 1 {
		maxConns = 1
	}
	db.SetMaxOpenConns(maxConns)
	db.SetMaxIdleConns(maxConns)
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("failed to connect to reference dataset").
			WithCause(err)
	}
	log.Debug().Str("path", path).Int("max_conns", maxConns).Msg("reference dataset opened")
	return &GeoPackageStore{db: db, path: path}, nil
}

func readOnlyDSN(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("invalid reference dataset path").
			WithCause(err)
	}
	location := url.URL{Path: filepath.ToSlash(abs)}
	return "file:" + location.EscapedPath() + "?mode=ro&_pragma=query_only(1)", nil
}

// GeoPackageStore is a read-only SQLite handle. *sql.DB pools connections,
// so one store can serve several workers.
type GeoPackageStore struct {
	db   *sql.DB
	path string
}

func (s *GeoPackageStore) Layers(ctx context.Context) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, layersQuery)
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeFailedPrecondition).
			WithMsg("reference dataset has no readable gpkg_contents: " + s.path).
			WithCause(err)
	}
	defer rows.Close()
	var layers []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to read reference layer").
				WithCause(err)
		}
		layers = append(layers, name)
	}
	if err := rows.Err(); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to list reference layers").
			WithCause(err)
	}
	return layers, nil
}

func (s *GeoPackageStore) Columns(ctx context.Context, layer string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx, "PRAGMA table_info("+types.QuoteIdentifier(layer)+")")
	if err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read columns of layer " + layer).
			WithCause(err)
	}
	defer rows.Close()
	var columns []string
	for rows.Next() {
		var (
			cid       int
			name      string
			declType  sql.NullString
			notNull   int
			dfltValue any
			pk        int
		)
		if err := rows.Scan(&cid, &name, &declType, &notNull, &dfltValue, &pk); err != nil {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("failed to scan column of layer " + layer).
				WithCause(err)
		}
		columns = append(columns, name)
	}
	if err := rows.Err(); err != nil {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to list columns of layer " + layer).
			WithCause(err)
	}
	return columns, nil
}

func (s *GeoPackageStore) FindFirst(ctx context.Context, query types.LayerQuery) (types.Row, bool, error) {
	statement, args := query.Statement()
	rows, err := s.db.QueryContext(ctx, statement, args...)
	if err != nil {
		return nil, false, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("reference query failed on layer " + query.Layer).
			WithCause(err)
	}
	defer rows.Close()
	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, false, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("reference query failed on layer " + query.Layer).
				WithCause(err)
		}
		return nil, false, nil
	}
	columns, err := rows.Columns()
	if err != nil {
		return nil, false, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to read result columns").
			WithCause(err)
	}
	values := make([]any, len(columns))
	targets := make([]any, len(columns))
	for i := range values {
		targets[i] = &values[i]
	}
	if err := rows.Scan(targets...); err != nil {
		return nil, false, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to scan reference row").
			WithCause(err)
	}
	row := types.Row{}
	for i, column := range columns {
		if value, ok := textValue(values[i]); ok {
			row[column] = value
		}
	}
	return row, true, nil
}

func (s *GeoPackageStore) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// textValue converts a scanned SQLite value to text. NULLs and binary
// geometry blobs are dropped.
func textValue(value any) (string, bool) {
	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		return v, true
	case []byte:
		if !utf8.Valid(v) {
			return "", false
		}
		return string(v), true
	case int64:
		return strconv.FormatInt(v, 10), true
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), true
	case bool:
		return strconv.FormatBool(v), true
	default:
		return fmt.Sprint(v), true
	}
}

var _ ports.ReferenceOpenerPort = GeoPackageAdapter{}
var _ ports.ReferenceStorePort = (*GeoPackageStore)(nil)
