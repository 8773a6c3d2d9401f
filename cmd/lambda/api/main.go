package main

import (
	awslambda "github.com/aws/aws-lambda-go/lambda"

	"invoicing-api/pkg/lambda"
)

func main() {
	awslambda.Start(lambda.APIGatewayHandler(lambda.GetConnectionManager()))
}
