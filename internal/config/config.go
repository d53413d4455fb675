package config // package config loads application configuration from environment variables

import (
    "log"     // log reports configuration errors and halts execution
    "os"      // os provides access to environment variables
    "strconv" // strconv converts strings to other types
    "time"    // time expresses the booking window durations
)

// Config holds all runtime configuration values.  Each field
// corresponds to an environment variable.  The database variables are
// optional: when DB_HOST is unset the service falls back to the
// seeded in-memory staff roster and never touches MySQL.
type Config struct {
    Env          string        // application environment (e.g. "dev", "prod")
    Port         string        // HTTP port to listen on
    JWTSecret    string        // secret used to sign staff JWTs
    AccessTTLMin int           // access token time-to-live in minutes
    BcryptCost   int           // bcrypt cost for hashing provisioned staff passwords
    AdvanceMin   time.Duration // minimum reservation lead time
    GraceMin     time.Duration // arrival window after the booking time
    DBUser       string        // database username (optional)
    DBPass       string        // database password (optional)
    DBHost       string        // database host address (optional)
    DBPort       string        // database port number (optional)
    DBName       string        // database name (optional)
}

// Load reads configuration from the environment.  Required variables
// are enforced by must() and missing values exit with a fatal log
// message.  The booking windows default to the business rule of 30
// minutes each; the bcrypt cost defaults to 10.
func Load() Config {
    return Config{
        Env:          must("APP_ENV"),
        Port:         must("APP_PORT"),
        JWTSecret:    must("JWT_SECRET"),
        AccessTTLMin: mustInt("ACCESS_TOKEN_TTL_MIN"),
        BcryptCost:   envInt("BCRYPT_COST", 10),
        AdvanceMin:   envMinutes("BOOKING_ADVANCE_MIN", 30),
        GraceMin:     envMinutes("BOOKING_GRACE_MIN", 30),
        DBUser:       os.Getenv("DB_USER"),
        DBPass:       os.Getenv("DB_PASS"),
        DBHost:       os.Getenv("DB_HOST"),
        DBPort:       os.Getenv("DB_PORT"),
        DBName:       os.Getenv("DB_NAME"),
    }
}

// must retrieves the value of a required environment variable.  If
// the variable is unset or empty, the application logs a fatal error
// and exits.
func must(key string) string {
    v, ok := os.LookupEnv(key)
    if !ok || v == "" {
        log.Fatalf("missing required env var: %s", key)
    }
    return v
}

// mustInt is like must() but converts the retrieved string into an
// integer.  If conversion fails, the application exits.
func mustInt(key string) int {
    s := must(key)
    n, err := strconv.Atoi(s)
    if err != nil {
        log.Fatalf("invalid int for %s: %q", key, s)
    }
    return n
}

// envMinutes reads an optional integer variable expressed in minutes
// and returns it as a duration, falling back to def.
func envMinutes(key string, def int) time.Duration {
    v := os.Getenv(key)
    if v == "" {
        return time.Duration(def) * time.Minute
    }
    n, err := strconv.Atoi(v)
    if err != nil || n < 0 {
        log.Fatalf("invalid minutes for %s: %q", key, v)
    }
    return time.Duration(n) * time.Minute
}
