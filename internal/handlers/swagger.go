package handlers

// @title Invoicing System by Paweł Klimek
// @version 1.0
// @description Application to manage invoices

// @contact.name Paweł Klimek
// @contact.url https://github.com/pawkli95
// @contact.email pawkli95@gmail.com

// @license.name No license

// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @tag.name invoice-controller
// @tag.description Controller used to manage invoices

// @tag.name tax-calculator-controller
// @tag.description Controller used to calculate taxes

// @tag.name company-controller
// @tag.description Controller used to manage companies

// @tag.name auth-controller
// @tag.description Controller used to authenticate users

// @tag.name user-controller
// @tag.description Controller used to manage users
