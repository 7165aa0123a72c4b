package main

import (
	"context"
	"log"
	"os"
	"strategyalign/api"
	"strategyalign/cmd"
	"strategyalign/internal/logger"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"
)

type lambdaHandler struct {
	ginLambda *ginadapter.GinLambda
}

func newLambdaHandler(apiHandler *api.ApiHandler) lambdaHandler {
	return lambdaHandler{
		ginLambda: ginadapter.New(apiHandler.InitializeRouterEngine()),
	}
}

func (m lambdaHandler) Handler(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	logger.FromContext(ctx).Infow("lambda request", "method", req.HTTPMethod, "path", req.Path)
	return m.ginLambda.ProxyWithContext(ctx, req)
}

func main() {
	apiHandler, _, err := cmd.InitializeDependencies(os.Getenv("ALIGN_CONFIG"))
	if err != nil {
		log.Fatal(err)
	}
	lambda.Start(newLambdaHandler(apiHandler).Handler)
}
