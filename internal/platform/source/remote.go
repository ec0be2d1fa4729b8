package source

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"empdir/internal/domain/directory"
)

const maxPayloadBytes = 8 << 20

// Remote fetches records from a table-data endpoint over HTTP.
type Remote struct {
	URL         string
	Credentials Credentials
	Client      *http.Client
}

func NewRemote(url string, creds Credentials, client *http.Client) *Remote {
	if client == nil {
		client = http.DefaultClient
	}
	return &Remote{URL: url, Credentials: creds, Client: client}
}

type remotePayload struct {
	TableData *struct {
		Data *[]directory.RawRecord `json:"data"`
	} `json:"TABLE_DATA"`
}

func (r *Remote) FetchRecords(ctx context.Context) ([]directory.RawRecord, error) {
	body, err := json.Marshal(r.Credentials)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.URL, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := r.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64*1024))
		return nil, fmt.Errorf("%w: status %d", ErrUpstreamStatus, resp.StatusCode)
	}

	var payload remotePayload
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxPayloadBytes)).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode table data: %w", err)
	}
	if payload.TableData == nil || payload.TableData.Data == nil {
		return nil, ErrMissingTableData
	}
	return *payload.TableData.Data, nil
}
