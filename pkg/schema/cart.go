package schema

const CartSchemaTextV1 = `{
	"type": "array",
	"items": {
		"type": "record",
		"namespace": "mymarket",
		"name": "cart_item",
		"fields" : [
			{"name": "product_id", "type": "string"},
			{"name": "name", "type": "string"},
			{"name": "variant", "type": "string"},
			{"name": "label", "type": "string"},
			{"name": "service", "type": "boolean"},
			{"name": "quantity", "type": "long"},
			{"name": "unit_price", "type": "long"},
			{"name": "line_total", "type": "long"}
		]
	}
}`

type CartItemV1 struct {
	ProductID string `avro:"product_id"`
	Name      string `avro:"name"`
	Variant   string `avro:"variant"`
	Label     string `avro:"label"`
	Service   bool   `avro:"service"`
	Quantity  int64  `avro:"quantity"`
	UnitPrice int64  `avro:"unit_price"`
	LineTotal int64  `avro:"line_total"`
}
