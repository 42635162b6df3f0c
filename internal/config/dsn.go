package config

import (
	"fmt"
	"net"
	neturl "net/url"
	"strconv"
	"strings"
)

const (
	defaultDBHost     = "127.0.0.1"
	defaultDBPort     = 3306
	defaultDBUser     = "root"
	defaultDBPassword = "password"
	defaultDBName     = "portfolio"
	defaultDBCharset  = "utf8mb4"
	defaultDBLoc      = "Local"

	defaultRedisHost = "localhost"
	defaultRedisPort = 6379
)

// dsnValue assembles a MySQL DSN from parts when no full DSN is configured.
func (c rawDatabaseConfig) dsnValue() string {
	if v := strings.TrimSpace(c.DSN); v != "" {
		return v
	}

	host := firstNonEmpty(c.Host, defaultDBHost)
	port := c.Port
	if port == 0 {
		port = defaultDBPort
	}
	user := firstNonEmpty(c.User, c.Username, defaultDBUser)
	password := firstNonEmpty(c.Password, defaultDBPassword)
	name := firstNonEmpty(c.Name, defaultDBName)
	charset := firstNonEmpty(c.Charset, defaultDBCharset)
	loc := firstNonEmpty(c.Loc, defaultDBLoc)

	params := neturl.Values{}
	params.Set("charset", charset)
	params.Set("parseTime", "True")
	params.Set("loc", loc)

	return fmt.Sprintf("%s:%s@tcp(%s)/%s?%s",
		user, password,
		net.JoinHostPort(host, strconv.Itoa(port)),
		name, params.Encode())
}

// urlValue assembles a redis:// URL from parts when none is configured.
func (c rawRedisConfig) urlValue() string {
	if v := strings.TrimSpace(c.URL); v != "" {
		return v
	}

	host := firstNonEmpty(c.Host, defaultRedisHost)
	port := c.Port
	if port == 0 {
		port = defaultRedisPort
	}

	u := neturl.URL{
		Scheme: "redis",
		Host:   net.JoinHostPort(host, strconv.Itoa(port)),
		Path:   "/" + strconv.Itoa(c.DB),
	}
	if password := strings.TrimSpace(c.Password); password != "" {
		u.User = neturl.UserPassword("", password)
	}
	return u.String()
}
