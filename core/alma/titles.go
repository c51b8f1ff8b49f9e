package alma

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"go.uber.org/zap"
)

// titlesPageSize is the number of bib records fetched per request.
const titlesPageSize = 100

// DigitalTitle is one digital bib record from the Alma bibs endpoint.
type DigitalTitle struct {
	// MMSID is the record's MMS ID.
	MMSID string
	// DCIdentifiers holds the record's dc:identifier values.
	DCIdentifiers []string
}

// bibsResponse is the subset of the bibs search payload we consume.
type bibsResponse struct {
	Docs []bibsDoc `json:"docs"`
}

type bibsDoc struct {
	PNX struct {
		Control pnxControl `json:"control"`
		AddData struct {
			Identifier []string `json:"identifier"`
		} `json:"addata"`
	} `json:"pnx"`
}

// FetchDigitalTitles pages through every digital-resource bib record and
// returns its MMS ID and dc:identifier values. Records without an MMS ID
// are dropped.
func (c *Client) FetchDigitalTitles(ctx context.Context) ([]DigitalTitle, error) {
	var titles []DigitalTitle
	offset := 0

	for {
		params := url.Values{}
		params.Set("q", "rtype,exact,digital")
		params.Set("limit", strconv.Itoa(titlesPageSize))
		params.Set("offset", strconv.Itoa(offset))

		var page bibsResponse
		if err := c.get(ctx, "/almaws/v1/bibs", params, &page); err != nil {
			return nil, fmt.Errorf("failed to fetch digital titles at offset %d: %w", offset, err)
		}

		if len(page.Docs) == 0 {
			break
		}

		for _, doc := range page.Docs {
			mmsID := recordID(doc.PNX.Control)
			if mmsID == "" {
				continue
			}
			titles = append(titles, DigitalTitle{
				MMSID:         mmsID,
				DCIdentifiers: doc.PNX.AddData.Identifier,
			})
		}

		c.logger.Info("Fetched digital titles page",
			zap.Int("page_size", len(page.Docs)),
			zap.Int("total", len(titles)),
		)

		if len(page.Docs) < titlesPageSize {
			break
		}
		offset += titlesPageSize
	}

	return titles, nil
}
