package pypi

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	logger "github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"

	"github.com/rios0rios0/projecttools/internal/domain/entities"
	"github.com/rios0rios0/projecttools/internal/domain/repositories"
)

const (
	// DefaultBaseURL is the JSON API root of the public Python Package Index.
	DefaultBaseURL = entities.DefaultIndexURL

	requestTimeout = 30 * time.Second
	versionPath    = "info.version"
)

// PackageIndexRepository implements repositories.PackageIndexRepository
// against the PyPI JSON API (GET <base>/<name>/json).
type PackageIndexRepository struct {
	baseURL string
	client  *http.Client
}

// NewPackageIndexRepository creates a PyPI client for baseURL.
func NewPackageIndexRepository(baseURL string) repositories.PackageIndexRepository {
	return NewPackageIndexRepositoryWithClient(baseURL, &http.Client{Timeout: requestTimeout})
}

// NewPackageIndexRepositoryWithClient creates a PyPI client using client.
func NewPackageIndexRepositoryWithClient(
	baseURL string,
	client *http.Client,
) repositories.PackageIndexRepository {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &PackageIndexRepository{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  client,
	}
}

// LatestVersion reads info.version of the package's JSON document.
func (r *PackageIndexRepository) LatestVersion(ctx context.Context, name string) (string, error) {
	endpoint := fmt.Sprintf("%s/%s/json", r.baseURL, url.PathEscape(name))
	logger.Debugf("[pypi] GET %s", endpoint)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", name, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", fmt.Errorf("%w: %s", entities.ErrPackageNotFound, name)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code for %s: %d", name, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response for %s: %w", name, err)
	}
	if !gjson.ValidBytes(body) {
		return "", fmt.Errorf("failed to parse response for %s: invalid JSON", name)
	}

	version := gjson.GetBytes(body, versionPath)
	if !version.Exists() || version.String() == "" {
		return "", fmt.Errorf("response for %s has no %s", name, versionPath)
	}
	return version.String(), nil
}
