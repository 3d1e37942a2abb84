package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/tebeka/selenium"
	"go.uber.org/zap"

	"github.com/wayming/Automated-Trading-System/common/logger"
	"github.com/wayming/Automated-Trading-System/common/lru"
)

const (
	newsFlowURL = "https://www.tradingview.com/news-flow/"
	signinURL   = "https://www.tradingview.com/#signin"

	cookiesPath = "output/trading_view_cookies.json"
	htmlDir     = "output/trading_view"
)

var slugPattern = regexp.MustCompile(`[<>:"/\\|?*\s,.]`)

// TradingView drives a remote chrome session against tradingview.com.
// Articles already seen in the LRU window are skipped before their
// page is loaded.
type TradingView struct {
	wd      selenium.WebDriver
	user    string
	pass    string
	timeout time.Duration
	seen    *lru.Dedupe
	log     *zap.Logger
}

func NewTradingView(hubURL, user, pass string, log *zap.Logger) (*TradingView, error) {
	caps := selenium.Capabilities{"browserName": "chrome"}
	wd, err := selenium.NewRemote(caps, hubURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open webdriver session: %w", err)
	}
	seen, err := lru.NewDedupe(lru.DefaultCapacity)
	if err != nil {
		wd.Quit()
		return nil, err
	}
	if err := os.MkdirAll(htmlDir, 0o755); err != nil {
		wd.Quit()
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	return &TradingView{
		wd:      wd,
		user:    user,
		pass:    pass,
		timeout: 20 * time.Second,
		seen:    seen,
		log:     log,
	}, nil
}

// Login restores the saved cookie jar when one exists and falls back
// to a fresh credential login.
func (t *TradingView) Login() error {
	if _, err := os.Stat(cookiesPath); err == nil {
		if err := t.cookieLogin(); err == nil {
			t.log.Info("logged in using saved cookies")
			return nil
		} else {
			t.log.Error("cookie login failed, logging in with credentials", zap.Error(err))
		}
	}
	return t.credentialLogin()
}

func (t *TradingView) cookieLogin() error {
	if err := t.wd.Get(newsFlowURL); err != nil {
		return err
	}
	if err := t.loadCookies(); err != nil {
		return err
	}
	if err := t.wd.Refresh(); err != nil {
		return err
	}
	return t.waitFor(selenium.ByCSSSelector, ".filtersBar-YXVzia8q", t.timeout)
}

func (t *TradingView) credentialLogin() error {
	if err := t.wd.Get(signinURL); err != nil {
		return err
	}

	t.log.Info("waiting for email button")
	if err := t.waitFor(selenium.ByXPATH, "//button[@name='Email']", t.timeout); err != nil {
		return fmt.Errorf("email button not found: %w", err)
	}
	emailButton, err := t.wd.FindElement(selenium.ByXPATH, "//button[@name='Email']")
	if err != nil {
		return err
	}
	if err := emailButton.Click(); err != nil {
		return err
	}

	t.log.Info("waiting for username field")
	if err := t.waitFor(selenium.ByID, "id_username", t.timeout); err != nil {
		return fmt.Errorf("username field not found: %w", err)
	}
	if err := t.sendKeys(selenium.ByID, "id_username", t.user); err != nil {
		return err
	}
	if err := t.sendKeys(selenium.ByID, "id_password", t.pass); err != nil {
		return err
	}

	t.log.Info("waiting for sign-in button")
	signIn := "//button[.//span[text()='Sign in']]"
	if err := t.waitFor(selenium.ByXPATH, signIn, t.timeout); err != nil {
		return fmt.Errorf("sign-in button not found: %w", err)
	}
	signInButton, err := t.wd.FindElement(selenium.ByXPATH, signIn)
	if err != nil {
		return err
	}
	if err := signInButton.Click(); err != nil {
		return err
	}

	t.log.Info("waiting for dashboard")
	if err := t.waitFor(selenium.ByCSSSelector, ".tv-lightweight-charts", t.timeout); err != nil {
		return fmt.Errorf("dashboard did not load: %w", err)
	}

	if err := t.saveCookies(); err != nil {
		t.log.Error("failed to save cookies", zap.Error(err))
	}
	t.log.Info("logged in successfully")
	return nil
}

// FetchNews loads the news-flow page, collects up to limit unseen
// items and reads each article body.
func (t *TradingView) FetchNews(limit int) ([]Article, error) {
	logger.Section(t.log, "Starting new scan(www.tradingview.com)")

	if err := t.wd.Get(newsFlowURL); err != nil {
		t.screenshot()
		return nil, fmt.Errorf("failed to load news flow: %w", err)
	}
	if err := t.waitFor(selenium.ByCSSSelector, ".card-DmjQR0Aa", 15*time.Second); err != nil {
		t.screenshot()
		return nil, fmt.Errorf("news cards did not load: %w", err)
	}
	cards, err := t.wd.FindElements(selenium.ByCSSSelector, ".card-DmjQR0Aa")
	if err != nil {
		t.screenshot()
		return nil, fmt.Errorf("failed to list news cards: %w", err)
	}

	type item struct{ link, title string }
	var items []item
	for _, card := range cards {
		link, err := card.GetAttribute("href")
		if err != nil || link == "" {
			continue
		}
		titleEl, err := card.FindElement(selenium.ByCSSSelector, ".title-e7vDzPX4")
		if err != nil {
			continue
		}
		title, err := titleEl.Text()
		if err != nil {
			continue
		}
		items = append(items, item{link: link, title: title})
		if len(items) == limit {
			break
		}
	}

	var articles []Article
	for _, it := range items {
		if t.seen.Seen(it.link, it.title) {
			continue
		}
		t.log.Info("reading new article",
			zap.String("title", it.title),
			zap.String("link", it.link),
		)
		article, err := t.readArticle(it.link, it.title)
		if err != nil {
			t.screenshot()
			t.log.Error("failed to read article", zap.Error(err))
			continue
		}
		articles = append(articles, article)
	}

	t.log.Info("scan finished", zap.Int("articles", len(articles)))
	return articles, nil
}

func (t *TradingView) readArticle(link, title string) (Article, error) {
	if err := t.wd.Get(link); err != nil {
		return Article{}, err
	}
	if err := t.waitFor(selenium.ByCSSSelector, ".body-KX2tCBZq", 5*time.Second); err != nil {
		return Article{}, fmt.Errorf("article body did not load: %w", err)
	}

	if html, err := t.wd.PageSource(); err == nil {
		path := filepath.Join(htmlDir, slugify(title)+".html")
		if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
			t.log.Error("failed to save article html", zap.Error(err))
		} else {
			t.log.Info("saved article html", zap.String("path", path))
		}
	}

	articleTitle := "No Title"
	if el, err := t.wd.FindElement(selenium.ByCSSSelector, ".title-KX2tCBZq"); err == nil {
		if text, err := el.Text(); err == nil {
			articleTitle = strings.TrimSpace(text)
		}
	}

	content := "No Content"
	if paragraphs, err := t.wd.FindElements(selenium.ByCSSSelector, ".body-KX2tCBZq p"); err == nil && len(paragraphs) > 0 {
		var lines []string
		for _, p := range paragraphs {
			if text, err := p.Text(); err == nil {
				lines = append(lines, strings.TrimSpace(text))
			}
		}
		if len(lines) > 0 {
			content = strings.Join(lines, "\n")
		}
	}

	return Article{URL: link, Title: articleTitle, Content: content}, nil
}

func (t *TradingView) Close() error {
	return t.wd.Quit()
}

func (t *TradingView) waitFor(by, selector string, timeout time.Duration) error {
	return t.wd.WaitWithTimeout(func(wd selenium.WebDriver) (bool, error) {
		_, err := wd.FindElement(by, selector)
		return err == nil, nil
	}, timeout)
}

func (t *TradingView) sendKeys(by, selector, keys string) error {
	el, err := t.wd.FindElement(by, selector)
	if err != nil {
		return err
	}
	return el.SendKeys(keys)
}

func (t *TradingView) saveCookies() error {
	cookies, err := t.wd.GetCookies()
	if err != nil {
		return err
	}
	data, err := json.Marshal(cookies)
	if err != nil {
		return err
	}
	return os.WriteFile(cookiesPath, data, 0o644)
}

func (t *TradingView) loadCookies() error {
	data, err := os.ReadFile(cookiesPath)
	if err != nil {
		return err
	}
	var cookies []selenium.Cookie
	if err := json.Unmarshal(data, &cookies); err != nil {
		return err
	}
	for i := range cookies {
		if err := t.wd.AddCookie(&cookies[i]); err != nil {
			return err
		}
	}
	return nil
}

func (t *TradingView) screenshot() {
	data, err := t.wd.Screenshot()
	if err != nil {
		return
	}
	path := filepath.Join(htmlDir, "error.png")
	if err := os.WriteFile(path, data, 0o644); err == nil {
		t.log.Info("saved error screenshot", zap.String("path", path))
	}
}

func slugify(text string) string {
	slug := slugPattern.ReplaceAllString(strings.Trim(text, "'"), "_")
	if len(slug) > 100 {
		slug = slug[:100]
	}
	return slug
}
