package adapter

import (
	"errors"

	"github.com/MKhiriev/go-agent-console/internal/logger"
	"github.com/MKhiriev/go-agent-console/internal/utils"
	"github.com/go-resty/resty/v2"
)

// installInterceptors registers the logging hooks on client.
//
// Request hook: logs the target url and payload. Apart from forwarding the
// trace id of the inbound request it never modifies the request.
// Response hook: logs status and payload of 2xx responses and turns any
// other status into a [*ResponseError].
// Error hook: logs every failed call. Calls that failed before a request was
// sent are logged as request errors, everything else as response errors.
// The error itself is returned to the caller by resty unchanged.
func installInterceptors(client *resty.Client, log *logger.Logger) {
	client.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		if traceID, ok := utils.GetTraceIDFromContext(r.Context()); ok && r.Header.Get(utils.TraceIDHeader) == "" {
			r.SetHeader(utils.TraceIDHeader, traceID)
		}

		log.Info().
			Str("method", r.Method).
			Str("url", r.URL).
			Interface("data", r.Body).
			Msg("api request")
		return nil
	})

	client.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
		if err := mapHTTPError(resp); err != nil {
			return err
		}

		log.Info().
			Int("status", resp.StatusCode()).
			Str("data", resp.String()).
			Msg("api response")
		return nil
	})

	client.OnError(func(r *resty.Request, err error) {
		if r.RawRequest == nil {
			log.Error().Err(err).Str("url", r.URL).Msg("api request error")
			return
		}

		event := log.Error().Str("url", r.URL)

		var respErr *resty.ResponseError
		if errors.As(err, &respErr) && respErr.Response != nil && respErr.Response.RawResponse != nil {
			event = event.Int("status", respErr.Response.StatusCode())
			if body := respErr.Response.String(); body != "" {
				event.Str("data", body).Msg("api response error")
				return
			}
		}

		event.Err(err).Msg("api response error")
	})
}
