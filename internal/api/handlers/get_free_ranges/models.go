package get_free_ranges

import (
	"time"

	"github.com/frolovsnails/FSN-BookingService/internal/domain"
	getFreeRanges "github.com/frolovsnails/FSN-BookingService/internal/usecase/get_free_ranges"
)

// FreeRangeResponse один свободный промежуток
type FreeRangeResponse struct {
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	DurationMinutes int    `json:"durationMinutes"`
}

// FreeRangesResponse HTTP response model
type FreeRangesResponse struct {
	Date       string              `json:"date"`
	WorkStart  string              `json:"workStart"`
	WorkEnd    string              `json:"workEnd"`
	FreeRanges []FreeRangeResponse `json:"freeRanges"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getFreeRanges.Response) *FreeRangesResponse {
	ranges := make([]FreeRangeResponse, 0, len(resp.FreeRanges))
	for _, fr := range resp.FreeRanges {
		ranges = append(ranges, FreeRangeResponse{
			StartTime:       fr.StartTime.Format(time.RFC3339),
			EndTime:         fr.EndTime.Format(time.RFC3339),
			DurationMinutes: fr.DurationMinutes,
		})
	}
	return &FreeRangesResponse{
		Date:       resp.Date.Format(domain.DateFormat),
		WorkStart:  resp.WorkStart.Format(domain.TimeFormat),
		WorkEnd:    resp.WorkEnd.Format(domain.TimeFormat),
		FreeRanges: ranges,
	}
}
