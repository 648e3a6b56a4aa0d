package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

const defaultPort = 5432

// Open abre una conexión pool a Postgres usando pgx (database/sql).
func Open(ctx context.Context, dsn string, connectTimeout time.Duration) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxIdleTime(5 * time.Minute)
	db.SetConnMaxLifetime(30 * time.Minute)

	if connectTimeout <= 0 {
		connectTimeout = 3 * time.Second
	}
	pingCtx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

type DSNParams struct {
	ContactPoints []string
	Port          int
	Database      string
	Username      string
	Password      string
	SSLMode       string
}

// BuildDSN arma un DSN multi-host a partir de los contact points.
// pgx prueba los hosts en orden.
func BuildDSN(p DSNParams) (string, error) {
	if len(p.ContactPoints) == 0 {
		return "", fmt.Errorf("postgres: no contact points")
	}
	port := p.Port
	if port == 0 {
		port = defaultPort
	}

	hosts := make([]string, 0, len(p.ContactPoints))
	for _, cp := range p.ContactPoints {
		cp = strings.TrimSpace(cp)
		if cp == "" {
			continue
		}
		if _, _, err := net.SplitHostPort(cp); err == nil {
			hosts = append(hosts, cp)
			continue
		}
		hosts = append(hosts, net.JoinHostPort(cp, strconv.Itoa(port)))
	}

	u := url.URL{
		Scheme: "postgres",
		Host:   strings.Join(hosts, ","),
		Path:   "/" + p.Database,
	}
	if p.Username != "" {
		if p.Password != "" {
			u.User = url.UserPassword(p.Username, p.Password)
		} else {
			u.User = url.User(p.Username)
		}
	}
	if p.SSLMode != "" {
		q := url.Values{}
		q.Set("sslmode", p.SSLMode)
		u.RawQuery = q.Encode()
	}
	return u.String(), nil
}
