package version

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/blang/semver/v4"
)

const ReleasesAPI = "https://api.github.com/repos/witanprotocol/witan/releases"

// ReleasesGetter returns the published releases of the project.
type ReleasesGetter func() ([]semver.Version, error)

type githubReleaseResponse struct {
	Name         string `json:"name"`
	IsDraft      bool   `json:"draft"`
	IsPreRelease bool   `json:"prerelease"`
}

// BuildGithubReleasesRequestFrom fetches releases from the GitHub API,
// leaving out drafts, pre-releases and names that aren't versions.
func BuildGithubReleasesRequestFrom(ctx context.Context, releasesURL string) ReleasesGetter {
	return func() ([]semver.Version, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, releasesURL, nil)
		if err != nil {
			return nil, fmt.Errorf("couldn't build request: %w", err)
		}
		req.Header.Add("Accept", "application/vnd.github.v3+json")

		client := &http.Client{}
		resp, err := client.Do(req)
		if err != nil {
			return nil, fmt.Errorf("couldn't deliver request: %w", err)
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return nil, fmt.Errorf("couldn't read response body: %w", err)
		}

		responses := []githubReleaseResponse{}
		if err = json.Unmarshal(body, &responses); err != nil {
			// try to parse as a general error message which would be useful
			// information to know e.g. if we were blocked due to GitHub
			// rate-limiting
			m := struct {
				Message string `json:"message"`
			}{}
			if mErr := json.Unmarshal(body, &m); mErr == nil {
				return nil, fmt.Errorf("couldn't read response message: %s: %w", m.Message, err)
			}

			return nil, fmt.Errorf("couldn't unmarshal response body: %w", err)
		}

		releases := []semver.Version{}
		for _, response := range responses {
			if response.IsDraft || response.IsPreRelease {
				continue
			}
			release, err := semver.Parse(strings.TrimPrefix(response.Name, "v"))
			if err != nil {
				// unsupported version
				continue
			}
			releases = append(releases, release)
		}

		return releases, nil
	}
}

// Check returns the newest release strictly greater than the running
// version, nil when already up to date.
func Check(getReleases ReleasesGetter, currentRelease string) (*semver.Version, error) {
	currentVersion, err := semver.ParseTolerant(currentRelease)
	if err != nil {
		return nil, fmt.Errorf("couldn't parse the current version: %w", err)
	}

	releases, err := getReleases()
	if err != nil {
		return nil, fmt.Errorf("couldn't get project releases: %w", err)
	}

	var newest *semver.Version
	for _, release := range releases {
		if release.GT(currentVersion) && (newest == nil || release.GT(*newest)) {
			v := release
			newest = &v
		}
	}
	return newest, nil
}
