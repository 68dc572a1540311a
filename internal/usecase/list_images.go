package usecase

import (
	"fmt"

	"github.com/JiqiSun/frame-extractor/internal/domain/port"
)

const (
	DefaultPageSize = 50
	MaxPageSize     = 500
)

// ImagePage is one page of a job's frame URLs.
type ImagePage struct {
	Images     []string `json:"images"`
	Page       int      `json:"page"`
	TotalPages int      `json:"total_pages"`
	Total      int      `json:"total"`
	PageSize   int      `json:"page_size"`
}

type ListImagesUseCase struct {
	store         port.JobStore
	publicPattern string
}

// NewListImagesUseCase builds the listing usecase. publicPrefix is the URL
// path the output root is mounted at, e.g. "/output".
func NewListImagesUseCase(store port.JobStore, publicPrefix string) *ListImagesUseCase {
	return &ListImagesUseCase{store: store, publicPattern: publicPrefix + "/%s/%s"}
}

// Execute returns page `page` (1-based) of the job's images in extraction
// order. Pages past the end yield an empty list, not an error: clients may
// probe freely without tracking totals.
func (uc *ListImagesUseCase) Execute(jobID string, page, pageSize int) (*ImagePage, error) {
	names, err := uc.store.ListImages(jobID)
	if err != nil {
		return nil, err
	}

	total := len(names)
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	// Pages past the end short-circuit before the offset arithmetic, which
	// would overflow for arbitrarily large page numbers.
	if page > totalPages {
		return &ImagePage{
			Images:     []string{},
			Page:       page,
			TotalPages: totalPages,
			Total:      total,
			PageSize:   pageSize,
		}, nil
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if end > total {
		end = total
	}

	urls := make([]string, 0, end-start)
	for _, name := range names[start:end] {
		urls = append(urls, fmt.Sprintf(uc.publicPattern, jobID, name))
	}

	return &ImagePage{
		Images:     urls,
		Page:       page,
		TotalPages: totalPages,
		Total:      total,
		PageSize:   pageSize,
	}, nil
}
