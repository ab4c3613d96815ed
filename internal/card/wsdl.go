package card

import (
	"context"
	"encoding/xml"

	"github.com/hooklift/gowsdl/soap"
)

const (
	// ServiceURL is the VentaPrepagoTitulo endpoint; its WSDL is at ServiceURL+"?wsdl"
	ServiceURL = "http://www.citram.es:50081/VENTAPREPAGOTITULO/VentaPrepagoTitulo.svc"

	actionConsultaSaldo1 = "http://tempuri.org/IVentaPrepagoTitulo/ConsultaSaldo1"
)

// ConsultaSaldo1 is the balance request for one transport card
type ConsultaSaldo1 struct {
	XMLName xml.Name `xml:"http://tempuri.org/ ConsultaSaldo1"`

	SNumeroTTP string `xml:"sNumeroTTP,omitempty"`
}

// ConsultaSaldo1Response wraps the balance result
type ConsultaSaldo1Response struct {
	XMLName xml.Name `xml:"http://tempuri.org/ ConsultaSaldo1Response"`

	ConsultaSaldo1Result *ConsultaSaldo1Result `xml:"ConsultaSaldo1Result,omitempty"`
}

// ConsultaSaldo1Result carries a call status and the card document as escaped XML
type ConsultaSaldo1Result struct {
	ICallLogField int `xml:"iCallLogField,omitempty"`

	SResulXMLField string `xml:"sResulXMLField,omitempty"`
}

// VentaPrepagoTitulo is the subset of the fare card service used by the client
type VentaPrepagoTitulo interface {
	ConsultaSaldo1(request *ConsultaSaldo1) (*ConsultaSaldo1Response, error)

	ConsultaSaldo1Context(ctx context.Context, request *ConsultaSaldo1) (*ConsultaSaldo1Response, error)
}

type ventaPrepagoTitulo struct {
	client *soap.Client
}

// NewVentaPrepagoTitulo binds the service to a SOAP client
func NewVentaPrepagoTitulo(client *soap.Client) VentaPrepagoTitulo {
	return &ventaPrepagoTitulo{
		client: client,
	}
}

func (service *ventaPrepagoTitulo) ConsultaSaldo1Context(ctx context.Context, request *ConsultaSaldo1) (*ConsultaSaldo1Response, error) {
	response := new(ConsultaSaldo1Response)
	err := service.client.CallContext(ctx, actionConsultaSaldo1, request, response)
	if err != nil {
		return nil, err
	}

	return response, nil
}

func (service *ventaPrepagoTitulo) ConsultaSaldo1(request *ConsultaSaldo1) (*ConsultaSaldo1Response, error) {
	return service.ConsultaSaldo1Context(
		context.Background(),
		request,
	)
}
