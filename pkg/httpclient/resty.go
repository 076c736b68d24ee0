package httpclient

import (
	"context"
	"time"

	"github.com/go-resty/resty/v2"
)

type Options struct {
	BaseURL     string
	Timeout     time.Duration
	BearerToken string
	RetryCount  int
	RetryWait   time.Duration
}

type RestyClient struct {
	client *resty.Client
}

func New(opts Options) HTTPClient {
	client := resty.New().
		SetBaseURL(opts.BaseURL).
		SetTimeout(opts.Timeout).
		SetHeader("Accept", "application/json")

	if opts.BearerToken != "" {
		client.SetAuthToken(opts.BearerToken)
	}
	if opts.RetryCount > 0 {
		client.SetRetryCount(opts.RetryCount).
			SetRetryWaitTime(opts.RetryWait).
			AddRetryCondition(func(r *resty.Response, err error) bool {
				return err != nil || r.StatusCode() >= 500 || r.StatusCode() == 429
			})
	}

	return &RestyClient{client: client}
}

func (rc *RestyClient) Get(ctx context.Context, endpoint string, queryParams map[string]string, headers map[string]string, result interface{}) (*BaseResponse, error) {
	req := rc.client.R().SetContext(ctx)
	if result != nil {
		req.SetResult(result)
	}
	if queryParams != nil {
		req.SetQueryParams(queryParams)
	}
	if headers != nil {
		req.SetHeaders(headers)
	}

	resp, err := req.Get(endpoint)
	return toBaseResponse(resp), err
}

func (rc *RestyClient) Post(ctx context.Context, endpoint string, body interface{}, headers map[string]string, result interface{}) (*BaseResponse, error) {
	req := rc.client.R().
		SetContext(ctx).
		SetBody(body)
	if result != nil {
		req.SetResult(result)
	}
	if headers != nil {
		req.SetHeaders(headers)
	}

	resp, err := req.Post(endpoint)
	return toBaseResponse(resp), err
}

func toBaseResponse(resp *resty.Response) *BaseResponse {
	if resp == nil {
		return &BaseResponse{}
	}
	return &BaseResponse{
		StatusCode: resp.StatusCode(),
		Body:       resp.Body(),
		Headers:    resp.Header(),
	}
}
