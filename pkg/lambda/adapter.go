package lambda

import (
	"context"
	"net/http"
	"net/http/httptest"

	"github.com/aws/aws-lambda-go/events"
	"github.com/sirupsen/logrus"
)

// Serve runs req through handler and captures the response
func Serve(ctx context.Context, handler http.Handler, req *Request) (*Response, error) {
	httpReq, err := req.HTTPRequest(ctx)
	if err != nil {
		return nil, err
	}

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httpReq)

	return &Response{
		StatusCode: recorder.Code,
		Headers:    recorder.Header().Clone(),
		Body:       recorder.Body.Bytes(),
	}, nil
}

// APIGatewayHandler returns a Lambda handler serving API Gateway proxy events
// with the HTTP handler held by the connection manager
func APIGatewayHandler(cm *ConnectionManager) func(context.Context, events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	return func(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		handler, err := cm.Handler(ctx)
		if err != nil {
			logrus.WithError(err).Error("Failed to initialize API")
			return errorResponse(http.StatusInternalServerError, "internal_error"), nil
		}

		req, err := FromAPIGateway(event)
		if err != nil {
			return errorResponse(http.StatusBadRequest, "validation_error"), nil
		}

		resp, err := Serve(ctx, handler, req)
		if err != nil {
			logrus.WithError(err).WithField("path", event.Path).Error("Failed to serve request")
			return errorResponse(http.StatusInternalServerError, "internal_error"), nil
		}
		return resp.ToAPIGateway(), nil
	}
}

func errorResponse(status int, code string) events.APIGatewayProxyResponse {
	return events.APIGatewayProxyResponse{
		StatusCode: status,
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       `{"error":"` + code + `","message":"` + http.StatusText(status) + `"}`,
	}
}
