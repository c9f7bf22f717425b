package translate

import (
	"context"
	"crypto/md5"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const baiduEndpoint = "https://fanyi-api.baidu.com/api/trans/vip/translate"

// baiduTranslator calls the Baidu Fanyi REST API.
type baiduTranslator struct {
	appID    string
	secret   string
	endpoint string
	client   *http.Client
}

// NewBaidu creates a Baidu Fanyi translator with the given credentials.
func NewBaidu(appID, secret string) Translator {
	return &baiduTranslator{
		appID:    appID,
		secret:   secret,
		endpoint: baiduEndpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (b *baiduTranslator) Name() string { return ProviderBaidu }

// baiduResponse is the subset of the Fanyi API response we consume.
type baiduResponse struct {
	ErrorCode   string `json:"error_code"`
	ErrorMsg    string `json:"error_msg"`
	TransResult []struct {
		Src string `json:"src"`
		Dst string `json:"dst"`
	} `json:"trans_result"`
}

func (b *baiduTranslator) Translate(ctx context.Context, text, source, target string) (string, error) {
	if b.appID == "" || b.secret == "" {
		return "", fmt.Errorf("baidu: missing app id or secret key")
	}

	salt := strconv.FormatInt(time.Now().Unix(), 10)
	params := url.Values{}
	params.Set("q", text)
	params.Set("from", source)
	params.Set("to", target)
	params.Set("appid", b.appID)
	params.Set("salt", salt)
	params.Set("sign", baiduSign(b.appID, text, salt, b.secret))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, b.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("baidu: build request: %w", err)
	}

	resp, err := b.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("baidu: request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("baidu: unexpected status %d", resp.StatusCode)
	}

	var parsed baiduResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return "", fmt.Errorf("baidu: decode response: %w", err)
	}
	if parsed.ErrorCode != "" && parsed.ErrorCode != "0" {
		return "", fmt.Errorf("baidu: api error %s: %s", parsed.ErrorCode, parsed.ErrorMsg)
	}
	if len(parsed.TransResult) == 0 {
		return "", fmt.Errorf("baidu: empty translation result")
	}
	return parsed.TransResult[0].Dst, nil
}

// baiduSign computes the Fanyi request signature:
// md5(appid + query + salt + secret), hex-encoded.
func baiduSign(appID, query, salt, secret string) string {
	sum := md5.Sum([]byte(appID + query + salt + secret))
	return fmt.Sprintf("%x", sum)
}
