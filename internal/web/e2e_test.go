//go:build e2e

package web

import (
	"context"
	"net/http/httptest"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/chromedp/chromedp"
)

func TestPageはコントラスト結果を描画する(t *testing.T) {
	if !hasBrowser() {
		t.Skip("Chrome/Chromiumが見つからないためスキップします")
	}

	srv := httptest.NewServer(newTestMux())
	t.Cleanup(srv.Close)

	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()
	ctx, cancel = context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	var ratio, level, chipColor string
	err := chromedp.Run(ctx,
		chromedp.Navigate(srv.URL),
		chromedp.WaitVisible(`#f`, chromedp.ByID),
		chromedp.Click(`#f button[type=submit]`, chromedp.ByQuery),
		chromedp.WaitVisible(`#out table`, chromedp.ByQuery),
		chromedp.Text(`#out tbody tr td:nth-child(3)`, &ratio, chromedp.ByQuery),
		chromedp.Text(`#out tbody tr td:nth-child(4)`, &level, chromedp.ByQuery),
		chromedp.Evaluate(`getComputedStyle(document.querySelector('#out .chip')).backgroundColor`, &chipColor),
	)
	if err != nil {
		t.Fatalf("chromedpの操作に失敗しました: %v", err)
	}
	if ratio != "4.48" {
		t.Fatalf("コントラスト比が期待値と異なります: %q", ratio)
	}
	if level != "AA Large" {
		t.Fatalf("判定が期待値と異なります: %q", level)
	}
	if chipColor != "rgb(119, 119, 119)" {
		t.Fatalf("スウォッチの色が CSP 下で適用されていません: %q", chipColor)
	}
}

func TestPageはsuggestの進捗を受け取る(t *testing.T) {
	if !hasBrowser() {
		t.Skip("Chrome/Chromiumが見つからないためスキップします")
	}

	srv := httptest.NewServer(newTestMux())
	t.Cleanup(srv.Close)

	ctx, cancel := chromedp.NewContext(context.Background())
	defer cancel()
	ctx, cancel = context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	var kind, status string
	var nodeCount int
	err := chromedp.Run(ctx,
		chromedp.Navigate(srv.URL),
		chromedp.WaitVisible(`#f`, chromedp.ByID),
		chromedp.SetValue(`#cmd`, "scale/suggest", chromedp.ByID),
		chromedp.Click(`#f button[type=submit]`, chromedp.ByQuery),
		chromedp.WaitVisible(`#out table[data-kind=suggest]`, chromedp.ByQuery),
		chromedp.AttributeValue(`#out table`, "data-kind", &kind, nil, chromedp.ByQuery),
		chromedp.Text(`#status`, &status, chromedp.ByID),
		chromedp.Evaluate(`document.querySelectorAll('#out script, #out img').length`, &nodeCount),
	)
	if err != nil {
		t.Fatalf("chromedpの操作に失敗しました: %v", err)
	}
	if kind != "suggest" {
		t.Fatalf("表の種別が期待値と異なります: %q", kind)
	}
	if !strings.HasSuffix(status, "rows") {
		t.Fatalf("ステータス表示が期待値と異なります: %q", status)
	}
	if nodeCount != 0 {
		t.Fatalf("危険なノードが挿入されています: %d", nodeCount)
	}
}

func hasBrowser() bool {
	candidates := []string{"google-chrome", "google-chrome-stable", "chromium", "chromium-browser"}
	for _, name := range candidates {
		if _, err := exec.LookPath(name); err == nil {
			return true
		}
	}
	return false
}
