package lessons

// Every vertex shader places the vertex with
// projection_matrix * view_matrix * model_matrix.

const whiteVertex = `
#version 410 core
in vec3 vertexPosition;

uniform mat4 projection_matrix;
uniform mat4 view_matrix;
uniform mat4 model_matrix;

void main(void)
{
    gl_Position = projection_matrix * view_matrix * model_matrix * vec4(vertexPosition, 1);
}
`

const whiteFragment = `
#version 410 core
out vec4 fragment;

void main(void)
{
    fragment = vec4(1, 1, 1, 1);
}
`

const colorVertex = `
#version 410 core
in vec3 vertexPosition;
in vec3 vertexColor;

uniform mat4 projection_matrix;
uniform mat4 view_matrix;
uniform mat4 model_matrix;

out vec3 color;

void main(void)
{
    color = vertexColor;
    gl_Position = projection_matrix * view_matrix * model_matrix * vec4(vertexPosition, 1);
}
`

const colorFragment = `
#version 410 core
in vec3 color;

out vec4 fragment;

void main(void)
{
    fragment = vec4(color, 1);
}
`

const textureVertex = `
#version 410 core
in vec3 vertexPosition;
in vec2 vertexUV;

uniform mat4 projection_matrix;
uniform mat4 view_matrix;
uniform mat4 model_matrix;

out vec2 uv;

void main(void)
{
    uv = vertexUV;
    gl_Position = projection_matrix * view_matrix * model_matrix * vec4(vertexPosition, 1);
}
`

const textureFragment = `
#version 410 core
in vec2 uv;

uniform sampler2D diffuse_texture;

out vec4 fragment;

void main(void)
{
    fragment = texture(diffuse_texture, uv);
}
`

// Normals are rotated by the model matrix only; it carries no scale.
const litVertex = `
#version 410 core
in vec3 vertexPosition;
in vec3 vertexNormal;
in vec2 vertexUV;

uniform mat4 projection_matrix;
uniform mat4 view_matrix;
uniform mat4 model_matrix;

out vec3 normal;
out vec2 uv;

void main(void)
{
    normal = normalize((model_matrix * vec4(vertexNormal, 0)).xyz);
    uv = vertexUV;
    gl_Position = projection_matrix * view_matrix * model_matrix * vec4(vertexPosition, 1);
}
`

const litFragment = `
#version 410 core
in vec3 normal;
in vec2 uv;

uniform sampler2D diffuse_texture;
uniform vec3 light_direction;
uniform bool enable_lighting;

out vec4 fragment;

void main(void)
{
    float diffuse = max(dot(normalize(normal), light_direction), 0.0);
    float ambient = 0.3;
    float lighting = enable_lighting ? max(diffuse, ambient) : 1.0;

    vec4 texel = texture(diffuse_texture, uv);
    fragment = vec4(texel.rgb * lighting, texel.a);
}
`
