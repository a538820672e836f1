// Package analytics provides privacy-first page view analytics. No cookies
// are set and no raw IP ever reaches the database; visitors are identified
// by a salted daily-rotating fingerprint.
package analytics

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"regexp"
	"strings"
	"sync"
	"time"
)

// salt holds the per-installation random salt for IP hashing, protected by sync.Once.
var salt struct {
	once  sync.Once
	value string
}

// InitSalt loads or generates a persistent salt for IP hashing.
// Must be called once at startup before any requests are served.
func InitSalt(store *Store) error {
	var initErr error
	salt.once.Do(func() {
		s, err := store.GetSetting("hash_salt")
		if err != nil {
			initErr = fmt.Errorf("read hash salt: %w", err)
			return
		}
		if s == "" {
			b := make([]byte, 32)
			if _, err := rand.Read(b); err != nil {
				initErr = fmt.Errorf("generate salt: %w", err)
				return
			}
			s = hex.EncodeToString(b)
			if err := store.SetSetting("hash_salt", s); err != nil {
				initErr = fmt.Errorf("store hash salt: %w", err)
				return
			}
		}
		salt.value = s
	})
	return initErr
}

func getSalt() string {
	return salt.value
}

// Visit represents a single page view.
type Visit struct {
	ID        int64     `json:"-"`
	VisitorID string    `json:"visitor_id"` // Anonymous fingerprint hash
	IPHash    string    `json:"-"`          // Hashed IP address
	Browser   string    `json:"browser"`
	OS        string    `json:"os"`
	Device    string    `json:"device"` // Desktop, Mobile, Tablet
	Locale    string    `json:"locale"` // Content locale of the viewed page
	Path      string    `json:"path"`
	Referrer  string    `json:"referrer"` // Cleaned referrer domain
	Timestamp time.Time `json:"timestamp"`
}

// Stats holds aggregated analytics data.
type Stats struct {
	Period         string          `json:"period"`
	UniqueVisitors int             `json:"unique_visitors"`
	TotalViews     int             `json:"total_views"`
	TopPages       []PageStat      `json:"top_pages"`
	LocaleStats    []DimensionStat `json:"locales"`
	BrowserStats   []DimensionStat `json:"browsers"`
	DeviceStats    []DimensionStat `json:"devices"`
	ReferrerStats  []DimensionStat `json:"referrers"`
	DailyViews     []DailyView     `json:"daily_views"`
}

// PageStat represents page view statistics.
type PageStat struct {
	Path  string `json:"path"`
	Views int    `json:"views"`
}

// DimensionStat represents a dimension breakdown (locale, browser, etc.).
type DimensionStat struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// DailyView represents views per day.
type DailyView struct {
	Date  string `json:"date"`
	Views int    `json:"views"`
}

// HashIP creates a salted SHA-256 hash of an IP address.
func HashIP(ip string) string {
	h := sha256.New()
	h.Write([]byte(getSalt() + ip))
	return hex.EncodeToString(h.Sum(nil))[:16]
}

// GenerateVisitorID creates a salted visitor ID from IP and User-Agent.
// The current date is mixed in so fingerprints rotate daily.
func GenerateVisitorID(ip, userAgent string) string {
	day := time.Now().UTC().Format("2006-01-02")
	h := sha256.New()
	h.Write([]byte(getSalt() + ip + "|" + userAgent + "|" + day))
	return hex.EncodeToString(h.Sum(nil))[:16]
}

// ParseUserAgent extracts browser, OS, and device from User-Agent string.
func ParseUserAgent(ua string) (browser, os, device string) {
	ua = strings.ToLower(ua)

	// Order matters: more specific patterns before generic ones.
	switch {
	case strings.Contains(ua, "firefox"):
		browser = "Firefox"
	case strings.Contains(ua, "opera") || strings.Contains(ua, "opr"):
		browser = "Opera"
	case strings.Contains(ua, "edg"):
		browser = "Edge"
	case strings.Contains(ua, "chrome"):
		browser = "Chrome"
	case strings.Contains(ua, "safari"):
		browser = "Safari"
	default:
		browser = "Other"
	}

	// Android before Linux since Android UA contains "linux".
	switch {
	case strings.Contains(ua, "windows"):
		os = "Windows"
	case strings.Contains(ua, "android"):
		os = "Android"
	case strings.Contains(ua, "iphone") || strings.Contains(ua, "ipad"):
		os = "iOS"
	case strings.Contains(ua, "macintosh") || strings.Contains(ua, "mac os"):
		os = "macOS"
	case strings.Contains(ua, "linux"):
		os = "Linux"
	default:
		os = "Other"
	}

	// iPad UA contains "mobile", check tablet first.
	switch {
	case strings.Contains(ua, "tablet") || strings.Contains(ua, "ipad"):
		device = "Tablet"
	case strings.Contains(ua, "mobile"):
		device = "Mobile"
	default:
		device = "Desktop"
	}

	return
}

// IsBot checks if the User-Agent is likely a bot/crawler.
func IsBot(ua string) bool {
	ua = strings.ToLower(ua)
	bots := []string{
		"bot", "crawler", "spider", "crawl", "slurp", "scrape",
		"googlebot", "bingbot", "yandex", "baidu", "duckduckbot",
		"facebookexternalhit", "twitterbot", "linkedinbot",
		"ahrefsbot", "semrushbot", "mj12bot", "dotbot",
	}
	for _, bot := range bots {
		if strings.Contains(ua, bot) {
			return true
		}
	}
	return false
}

// referrerDomainRegex is pre-compiled for use in CleanReferrer.
var referrerDomainRegex = regexp.MustCompile(`^https?://(?:www\.)?([^/]+)`)

// CleanReferrer extracts the domain from a referrer URL.
func CleanReferrer(ref string) string {
	if ref == "" {
		return "Direct"
	}

	refLower := strings.ToLower(ref)
	switch {
	case strings.Contains(refLower, "google."):
		return "Google"
	case strings.Contains(refLower, "bing."):
		return "Bing"
	case strings.Contains(refLower, "duckduckgo."):
		return "DuckDuckGo"
	case strings.Contains(refLower, "linkedin."):
		return "LinkedIn"
	case strings.Contains(refLower, "t.co") || strings.Contains(refLower, "twitter."):
		return "Twitter"
	}

	matches := referrerDomainRegex.FindStringSubmatch(ref)
	if len(matches) > 1 {
		return matches[1]
	}

	return "Other"
}
